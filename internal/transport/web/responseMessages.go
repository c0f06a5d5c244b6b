package web

const (
	internalErrMsg     string = "something went wrong, please try again later"
	invalidFilterMsg   string = "invalid filter input, showing the previous results"
	catalogNotReadyMsg string = "the catalog is not ready yet, please retry in a moment"
)
