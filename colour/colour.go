package colour

const (
	reset  = "\x1b[0m"
	bright = "\x1b[1m"

	fgRed    = "\x1b[31m"
	fgGreen  = "\x1b[32m"
	fgYellow = "\x1b[33m"
	fgBlue   = "\x1b[34m"
)

func Success(message string) string {
	return green(message)
}

func Info(message string) string {
	return bright + blue(message)
}

func Warning(message string) string {
	return yellow(message)
}

func Failure(message string) string {
	return red(message)
}

func green(message string) string {
	return fgGreen + message + reset
}

func blue(message string) string {
	return fgBlue + message + reset
}

func red(message string) string {
	return fgRed + message + reset
}

func yellow(message string) string {
	return fgYellow + message + reset
}
