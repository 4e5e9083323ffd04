package env

import (
	"os"

	"github.com/denisbrodbeck/machineid"
)

// MachineID derives the default controller ID from the machine.
// Minimal images may lack a machine ID, the hostname serves then.
func MachineID() string {
	if id, err := machineid.ID(); err == nil {
		return id
	}
	host, err := os.Hostname()
	if err != nil {
		panic(err)
	}
	return host
}
