package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"syscall"
)

// writePIDFile records the server PID at path, optionally holding an
// exclusive flock so a second server refuses to start. The returned release
// function removes the file.
func writePIDFile(path string, lock bool) (func(), error) {
	// Open without truncating, a running server's PID must survive a refused start
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("cannot open PID file: %w", err)
	}

	if lock {
		if err := syscall.Flock(int(file.Fd()), syscall.LOCK_EX|syscall.LOCK_NB); err != nil {
			file.Close()
			if errors.Is(err, syscall.EWOULDBLOCK) {
				return nil, describeExistingPID(path)
			}
			return nil, fmt.Errorf("lock failed: %w", err)
		}
	}

	// Lock held (or not requested), replace whatever was there
	if err := file.Truncate(0); err != nil {
		file.Close()
		return nil, fmt.Errorf("cannot truncate PID file: %w", err)
	}

	// Write current PID
	if _, err := fmt.Fprintf(file, "%d\n", os.Getpid()); err != nil {
		file.Close()
		os.Remove(path)
		return nil, fmt.Errorf("cannot write PID: %w", err)
	}
	if err := file.Sync(); err != nil {
		file.Close()
		os.Remove(path)
		return nil, fmt.Errorf("cannot sync PID file: %w", err)
	}

	return func() {
		file.Close() // also drops the flock
		os.Remove(path)
	}, nil
}

// describeExistingPID explains why the lock on path is unavailable
func describeExistingPID(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("another checkers server holds %s", path)
	}

	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return fmt.Errorf("another checkers server holds %s (contains: %q)", path, string(data))
	}

	// Signal 0 only probes for existence
	proc, _ := os.FindProcess(pid)
	if err := proc.Signal(syscall.Signal(0)); err != nil {
		if errors.Is(err, os.ErrProcessDone) || errors.Is(err, syscall.ESRCH) {
			return fmt.Errorf("%s is locked but process %d is gone", path, pid)
		}
		return fmt.Errorf("process %d holds %s but cannot verify ownership: %v", pid, path, err)
	}
	return fmt.Errorf("another checkers server is running (process %d holds %s)", pid, path)
}
