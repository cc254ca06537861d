package enums_test

import (
	"fmt"

	"github.com/nolag/enums"
)

type Weekday uint8

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
)

type Mode uint8

const (
	ModeRead  Mode = 1
	ModeWrite Mode = 2
	ModeExec  Mode = 4
)

func init() {
	enums.Register([]enums.Constant[Weekday]{
		{Name: "Monday", Value: Monday},
		{Name: "Tuesday", Value: Tuesday},
		{Name: "Wednesday", Value: Wednesday},
	})

	enums.Register([]enums.Constant[Mode]{
		{Name: "Read", Value: ModeRead},
		{Name: "Write", Value: ModeWrite},
		{Name: "Exec", Value: ModeExec},
	}, enums.WithFlags())
}

func ExampleNames() {
	fmt.Println(enums.Names[Weekday]())
	// Output: [Monday Tuesday Wednesday]
}

func ExampleName() {
	name, ok := enums.Name(Tuesday)
	fmt.Println(name, ok)

	_, ok = enums.Name(Weekday(42))
	fmt.Println(ok)
	// Output:
	// Tuesday true
	// false
}

func ExampleParse() {
	day, err := enums.Parse[Weekday]("Wednesday")
	fmt.Println(day == Wednesday, err)

	_, err = enums.Parse[Weekday]("Caturday")
	fmt.Println(err)
	// Output:
	// true <nil>
	// enums: cannot parse "Caturday" as enums_test.Weekday
}

func ExampleParseInsensitive() {
	day, _ := enums.ParseInsensitive[Weekday]("tuesday")
	name, _ := enums.Name(day)
	fmt.Println(name)
	// Output: Tuesday
}

func ExampleFormat() {
	name, _ := enums.Format(Tuesday, "G")
	dec, _ := enums.Format(Tuesday, "D")
	hex, _ := enums.Format(Tuesday, "X")
	fmt.Println(name, dec, hex)
	// Output: Tuesday 1 01
}

func ExampleFormat_flags() {
	s, _ := enums.Format(ModeRead|ModeWrite, "G")
	fmt.Println(s)
	// Output: Read, Write
}

func ExampleUnderlying() {
	d := enums.Underlying[Weekday]()
	fmt.Println(d.Kind, d.Bits, d.Signed)
	// Output: uint8 8 false
}

func ExampleParse_flags() {
	mode, _ := enums.Parse[Mode]("Read|Exec")
	fmt.Println(enums.HasFlag(mode, ModeRead), enums.HasFlag(mode, ModeWrite))
	// Output: true false
}
