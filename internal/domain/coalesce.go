package domain

// CoalesceStr returns the first non-empty string from vals.
func CoalesceStr(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// StrFromPtrs returns the first non-nil, non-empty *string value, or "".
func StrFromPtrs(ptrs ...*string) string {
	for _, p := range ptrs {
		if p != nil && *p != "" {
			return *p
		}
	}
	return ""
}

// IntFromPtrWithDefault returns the first non-nil *int value, or the fallback.
func IntFromPtrWithDefault(fallback int, ptrs ...*int) int {
	for _, p := range ptrs {
		if p != nil {
			return *p
		}
	}
	return fallback
}

// BoolFromPtrWithDefault returns the first non-nil *bool value, or the fallback.
func BoolFromPtrWithDefault(fallback bool, ptrs ...*bool) bool {
	for _, p := range ptrs {
		if p != nil {
			return *p
		}
	}
	return fallback
}

// Float64FromPtrWithDefault returns the first non-nil *float64 value, or the fallback.
func Float64FromPtrWithDefault(fallback float64, ptrs ...*float64) float64 {
	for _, p := range ptrs {
		if p != nil {
			return *p
		}
	}
	return fallback
}

// StringsOrEmpty returns the first non-nil slice, copied, or an empty non-nil slice.
func StringsOrEmpty(slices ...[]string) []string {
	for _, s := range slices {
		if s != nil {
			out := make([]string, 0, len(s))
			for _, v := range s {
				if v != "" {
					out = append(out, v)
				}
			}
			return out
		}
	}
	return []string{}
}

// ClampPct bounds v to [0, 100].
func ClampPct(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}

// PtrIfNonEmpty returns nil for "" and a pointer to s otherwise.
func PtrIfNonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
