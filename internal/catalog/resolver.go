package catalog

// ResolveVariant returns the first variant, in declaration order, whose
// declared options are all matched by the selection. Extra keys present only
// in the selection are ignored: the match is variant-options-is-subset-of-
// selection, not set equality.
//
// A nil result means no purchasable variant exists for the combination;
// callers disable purchase actions rather than treating it as an error.
func ResolveVariant(variants []Variant, selection map[string]string) *Variant {
	for i := range variants {
		if variantMatches(&variants[i], selection) {
			return &variants[i]
		}
	}
	return nil
}

func variantMatches(variant *Variant, selection map[string]string) bool {
	for name, value := range variant.Options {
		if selection[name] != value {
			return false
		}
	}
	return true
}
