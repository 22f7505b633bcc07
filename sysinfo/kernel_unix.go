//go:build unix

package sysinfo

import (
	"context"

	"golang.org/x/sys/unix"
)

type unameKernel struct{}

func newKernelSource() KernelSource {
	return unameKernel{}
}

func (unameKernel) Uname(context.Context) (Uname, error) {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return Uname{}, err
	}
	return Uname{
		Sysname: unix.ByteSliceToString(u.Sysname[:]),
		Release: unix.ByteSliceToString(u.Release[:]),
		Version: unix.ByteSliceToString(u.Version[:]),
		Machine: unix.ByteSliceToString(u.Machine[:]),
	}, nil
}
