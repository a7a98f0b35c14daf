package visit

// debugGuards enables protocol-misuse checks. Misuse is a programming
// defect, never a recoverable condition: guarded paths panic.
const debugGuards = true

func misuse(msg string) {
	panic("visit: protocol misuse: " + msg)
}
