package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-yaml/yaml"

	"github.com/ClickerMonkey/flaggo"
)

// The enumeration inspected values are parsed into. The table is loaded at
// runtime, so the widest unsigned type is used.
type Word uint64

func (Word) FlagEnum() {}

type tableFile struct {
	Name  string `yaml:"name"`
	Flags []struct {
		Name string `yaml:"name"`
		Bit  uint64 `yaml:"bit"`
		Help string `yaml:"help"`
	} `yaml:"flags"`
}

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		fmt.Println("usage: inspect <table.yaml> [flag...]")
		os.Exit(1)
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		panic(err)
	}

	var file tableFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		panic(err)
	}

	names := make(flaggo.Names[Word], 0, len(file.Flags))
	for _, flag := range file.Flags {
		names = append(names, flaggo.Named[Word]{Name: flag.Name, Bit: Word(flag.Bit), Help: flag.Help})
	}
	if err := flaggo.Register(file.Name, names); err != nil {
		panic(err)
	}

	set, err := flaggo.ParseNames(strings.Join(args[1:], "|"), names)
	if err != nil {
		panic(err)
	}

	fmt.Printf("%s = %#x (%d flags set)\n", set.Format(names), uint64(set.Get()), set.Count())

	table, err := flaggo.Describe[Word]()
	if err != nil {
		panic(err)
	}
	fmt.Print(table)
}
