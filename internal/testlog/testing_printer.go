package testlog

//go:generate mockgen -package extmocks -destination ../extmocks/testing_printer.go -mock_names TestingPrinter=TestingPrinterMock github.com/GabrielCS08/data-structures/internal/testlog TestingPrinter

// TestingPrinter wrapper over *testing.T to print data
type TestingPrinter interface {
	Helper()
	Log(a ...any)
	Logf(format string, a ...any)
	Error(a ...any)
	Errorf(format string, a ...any)
}
