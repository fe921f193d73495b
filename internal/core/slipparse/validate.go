package slipparse

import "tallybook/internal/core/refdata"

// Semantic checks shared by the grammar parsers. Shape has already been
// established when these run; every failure here is a ValidationError.

func validatePana(snap refdata.Snapshot, n int) error {
	if !snap.ValidPana(n) {
		return validationf("number %d is not in the pana reference set", n)
	}
	return nil
}

func validateColumn(kind refdata.TableKind, column int) error {
	if refdata.ValidColumn(kind, column) {
		return nil
	}
	switch kind {
	case refdata.CP:
		return validationf("CP column must be 11-99 or 0, got %d", column)
	default:
		return validationf("%s column must be 1-10, got %d", kind, column)
	}
}

func validateTimeColumns(cols []int) error {
	if len(cols) == 0 {
		return structuralf("no time columns before '='")
	}
	var seen [10]bool
	for _, c := range cols {
		if c < 0 || c > 9 {
			return validationf("time column must be 0-9, got %d", c)
		}
		if seen[c] {
			return validationf("duplicate time column %d", c)
		}
		seen[c] = true
	}
	return nil
}

func validateDirect(n int) error {
	if n < 1 || n > 999 {
		return validationf("direct number must be 1-999, got %d", n)
	}
	return nil
}
