package discovery

import "time"

// SetProbes replaces the machine probes used by the initializer.
func (i *Initializer) SetProbes(
	hostname func() (string, error),
	readFile func(string) ([]byte, error),
	newID func() string,
	now func() time.Time,
) {
	i.hostname = hostname
	i.readFile = readFile
	i.newID = newID
	i.now = now
}
