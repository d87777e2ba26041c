package main

import (
	"fmt"

	"github.com/ClickerMonkey/flaggo"
)

type Perm uint8

const (
	Read Perm = 1 << iota
	Write
	Exec
)

func (Perm) FlagEnum() {}

type Perms = flaggo.Set[Perm]

func main() {
	flaggo.MustRegister("Perm", flaggo.Names[Perm]{
		{Name: "read", Bit: Read, Help: "The file can be read."},
		{Name: "write", Bit: Write, Help: "The file can be written."},
		{Name: "exec", Bit: Exec, Help: "The file can be executed."},
	})

	perms := flaggo.New(Read).Or(Write)
	fmt.Printf("read|write   = %s (%d)\n", perms, perms.Get())

	perms.Only(Write)
	fmt.Printf("&= write     = %s (%d)\n", perms, perms.Get())

	perms.Set(Exec)
	fmt.Printf("|= exec      = %s (%d)\n", perms, perms.Get())

	fmt.Printf("complement   = %#x\n", uint8(perms.Not().Get()))

	table, err := flaggo.Describe[Perm]()
	if err != nil {
		panic(err)
	}
	fmt.Print(table)
}
