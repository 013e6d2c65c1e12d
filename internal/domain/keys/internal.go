package keys

// Primary program
const (
	Execute   string = "execute"
	TargetURL string = "target-url"
)
