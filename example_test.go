// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chainmap_test

import (
	"fmt"

	"github.com/aristanetworks/chainmap"
)

func ExampleMap_Iter() {
	m := chainmap.New(
		func(a, b string) bool { return a == b },
		chainmap.HashString,
		chainmap.KeyElem[string, string]{"Avenue", "AVE"},
		chainmap.KeyElem[string, string]{"Street", "ST"},
		chainmap.KeyElem[string, string]{"Court", "CT"},
	)

	for i := m.Iter(); i.Next(); {
		fmt.Printf("The abbreviation for %q is %q", i.Key(), i.Elem())
	}
}

func ExampleMap_Insert() {
	m := chainmap.NewComparable[string, string]()
	m.Insert("A", "Value A")
	old, replaced := m.Insert("A", "Value A2")
	fmt.Println(old, replaced, m.Len())

	v, ok := m.Remove("A")
	fmt.Println(v, ok, m.IsEmpty())
	// Output:
	// Value A true 1
	// Value A2 true true
}
