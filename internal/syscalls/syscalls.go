// Package syscalls provides the concrete operating system implementations
// behind the per-package provider interfaces of the library.
package syscalls

import (
	"os"

	"golang.org/x/sys/unix"
)

// RealOS is the standard library implementation of the OS provider calls.
type RealOS struct{}

func (RealOS) ReadDir(name string) ([]os.DirEntry, error) {
	return os.ReadDir(name)
}

func (RealOS) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

func (RealOS) Lstat(name string) (os.FileInfo, error) {
	return os.Lstat(name)
}

func (RealOS) Getwd() (string, error) {
	return os.Getwd()
}

func (RealOS) Open(name string) (*os.File, error) {
	return os.Open(name)
}

// RealUnix is the unix syscall implementation of the unix provider calls.
type RealUnix struct{}

func (RealUnix) Stat(path string, stat *unix.Stat_t) error {
	return unix.Stat(path, stat)
}

func (RealUnix) Lstat(path string, stat *unix.Stat_t) error {
	return unix.Lstat(path, stat)
}
