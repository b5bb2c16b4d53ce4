package settingsrouter

// QueryUpdater writes bound query parameters back into the current location.
type QueryUpdater interface {
	QueryUpdate()
}

// QueryUpdaterRef is embedded in components that write bound parameters back.
type QueryUpdaterRef struct {
	QueryUpdater // embed QueryUpdater
}

// QueryUpdaterSet implements QueryUpdaterSetter.
func (h *QueryUpdaterRef) QueryUpdaterSet(o QueryUpdater) {
	h.QueryUpdater = o
}

// QueryUpdaterSetter is implemented by anything that accepts a QueryUpdater.
type QueryUpdaterSetter interface {
	QueryUpdaterSet(QueryUpdater)
}

// BindParam is implemented by something that can be read and written as a query param.
type BindParam interface {
	BindParamRead() []string
	BindParamWrite(v []string)
}

// StringParam implements BindParam on a string.
type StringParam string

// BindParamRead implements BindParam.
func (s *StringParam) BindParamRead() []string {
	if len(*s) == 0 {
		return nil
	}
	return []string{string(*s)}
}

// BindParamWrite implements BindParam.
func (s *StringParam) BindParamWrite(v []string) {
	if len(v) == 0 {
		*s = ""
		return
	}
	*s = StringParam(v[0])
}
