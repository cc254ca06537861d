package main

import (
	"fmt"
	"os"

	"github.com/nolag/enums"
)

type Signal uint8

const (
	SigHup  Signal = 1
	SigInt  Signal = 2
	SigKill Signal = 9
)

func init() {
	enums.Register([]enums.Constant[Signal]{
		{Name: "SIGHUP", Value: SigHup},
		{Name: "SIGINT", Value: SigInt},
		{Name: "SIGKILL", Value: SigKill},
	})
}

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		args = []string{"SIGINT", "9", "sigkill", "SIGSTOP"}
	}

	fmt.Println("known signals:", enums.Names[Signal]())
	fmt.Println("underlying:", enums.Underlying[Signal]())

	for _, arg := range args {
		sig, err := enums.ParseInsensitive[Signal](arg)
		if err != nil {
			fmt.Printf("%-10s -> %v\n", arg, err)
			continue
		}
		name, _ := enums.Format(sig, "G")
		dec, _ := enums.Format(sig, "D")
		fmt.Printf("%-10s -> %s (%s)\n", arg, name, dec)
	}
}
