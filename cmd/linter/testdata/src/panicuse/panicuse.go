package panicuse

func Must(value string, err error) string {
	if err != nil {
		panic(err) // want `panic\(\) should not be used in generator code`
	}
	return value
}
