package clipboard

// WriteText copies a UTF-8 string to the system clipboard
func WriteText(text string) error {
	return Write(FmtText, []byte(text))
}
