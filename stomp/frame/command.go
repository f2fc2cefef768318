package frame

// STOMP frame commands. Used upper-case naming
// convention to avoid clashing with STOMP header names.
const (
	// Client commands.
	ABORT       = "ABORT"
	ACK         = "ACK"
	BEGIN       = "BEGIN"
	COMMIT      = "COMMIT"
	CONNECT     = "CONNECT"
	DISCONNECT  = "DISCONNECT"
	NACK        = "NACK"
	SEND        = "SEND"
	STOMP       = "STOMP"
	SUBSCRIBE   = "SUBSCRIBE"
	UNSUBSCRIBE = "UNSUBSCRIBE"

	// Server commands.
	CONNECTED = "CONNECTED"
	ERROR     = "ERROR"
	MESSAGE   = "MESSAGE"
	RECEIPT   = "RECEIPT"
)

var commands = map[string]bool{
	ABORT:       true,
	ACK:         true,
	BEGIN:       true,
	COMMIT:      true,
	CONNECT:     true,
	DISCONNECT:  true,
	NACK:        true,
	SEND:        true,
	STOMP:       true,
	SUBSCRIBE:   true,
	UNSUBSCRIBE: true,
	CONNECTED:   true,
	ERROR:       true,
	MESSAGE:     true,
	RECEIPT:     true,
}

// Valid reports whether command is a recognized STOMP frame command.
// Command matching is case-sensitive: commands are always upper-case
// on the wire.
func Valid(command string) bool {
	return commands[command]
}
