package ui

const errorGlyph = "❌"

// ErrorMessage formats err for the error banner
func ErrorMessage(err error) string {
	msg := "Error desconocido"
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	return errorGlyph + " " + msg
}

// RenderError renders the error banner
func RenderError(err error) string {
	return errorBannerStyle.Render(ErrorMessage(err))
}
