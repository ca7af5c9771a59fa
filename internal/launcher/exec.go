// Package launcher replaces the current process with a target command once
// validation has passed.
package launcher

import (
	"errors"
	"os"
	"os/exec"
	"syscall"
)

// Exec replaces the current process with the target command via execve.
// It does not return on success. environ is the full environment for the
// new process, typically os.Environ() merged with the validated env file.
func Exec(target string, args, environ []string) error {
	execPath, err := exec.LookPath(target)
	if err != nil {
		return err
	}

	// argv[0] is the command name as invoked, then the arguments.
	argv := append([]string{target}, args...)

	return syscall.Exec(execPath, argv, environ)
}

// IsNotFound reports whether err means the command does not exist.
// Callers map this to exit code 127 by shell convention.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, exec.ErrNotFound) || errors.Is(err, os.ErrNotExist)
}

// IsPermissionDenied reports whether err means the command exists but is
// not executable. Callers map this to exit code 126 by shell convention.
func IsPermissionDenied(err error) bool {
	return err != nil && errors.Is(err, os.ErrPermission)
}
