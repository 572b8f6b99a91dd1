package models

// columns collects the fields of a patch that were present in the payload.
type columns map[string]any

// put records v under name unless it is a nil pointer.
func (c columns) put(name string, v any) {
	switch t := v.(type) {
	case *string:
		if t != nil {
			c[name] = *t
		}
	case *int:
		if t != nil {
			c[name] = *t
		}
	case *bool:
		if t != nil {
			c[name] = *t
		}
	}
}

// putNullable records an optional column. An empty string clears it.
func (c columns) putNullable(name string, v *string) {
	if v == nil {
		return
	}

	if *v == "" {
		c[name] = nil

		return
	}

	c[name] = *v
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

// setNullable replaces an optional field, an empty string clears it.
func setNullable(dst **string, v *string) {
	if v == nil {
		return
	}

	if *v == "" {
		*dst = nil

		return
	}

	s := *v
	*dst = &s
}

// nullable turns an empty optional input into nil.
func nullable(v *string) *string {
	if v == nil || *v == "" {
		return nil
	}

	s := *v

	return &s
}

func derefInt(v *int) int {
	if v == nil {
		return 0
	}

	return *v
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}

	return *v
}
