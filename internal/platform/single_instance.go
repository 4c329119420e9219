package platform

import (
	"fmt"
	"hash/fnv"
	"net"

	"github.com/pkg/errors"
)

// ErrAlreadyRunning indicates another instance already holds the lock.
var ErrAlreadyRunning = errors.New("instance already running")

const (
	minInstancePort = 20000
	maxInstancePort = 39999
)

// InstanceGuard holds the single-instance lock.
type InstanceGuard struct {
	listener net.Listener
}

// AcquireSingleInstance binds a localhost port derived from the app id. Only
// one process can hold it, so a second launch gets ErrAlreadyRunning.
func AcquireSingleInstance(appID string) (*InstanceGuard, error) {
	address := fmt.Sprintf("127.0.0.1:%d", instancePort(appID))
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, errors.Wrapf(ErrAlreadyRunning, "listen on %s: %v", address, err)
	}
	return &InstanceGuard{listener: listener}, nil
}

// Release frees the single instance lock.
func (guard *InstanceGuard) Release() error {
	if guard == nil || guard.listener == nil {
		return nil
	}
	return guard.listener.Close()
}

// Address returns the bound address.
func (guard *InstanceGuard) Address() string {
	if guard == nil || guard.listener == nil {
		return ""
	}
	return guard.listener.Addr().String()
}

func instancePort(appID string) int {
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(appID))
	rangeSize := maxInstancePort - minInstancePort + 1
	return minInstancePort + int(hash.Sum32()%uint32(rangeSize))
}
