// Copyright (c) Arista Networks, Inc. 2024
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chainmap

import (
	"fmt"
	"testing"
)

func chainKeys(c *chain[string, int]) string {
	var keys []string
	for n := c.entries.Front(); n != nil; n = n.Next() {
		keys = append(keys, fmt.Sprintf("%s=%d", n.Value.key, n.Value.elem))
	}
	return fmt.Sprint(keys)
}

func TestChainInsert(t *testing.T) {
	var c chain[string, int]
	for i, k := range []string{"a", "b", "c"} {
		if _, replaced := c.insert(strEqual, k, i); replaced {
			t.Errorf("insert %q reported a replace", k)
		}
	}
	old, replaced := c.insert(strEqual, "b", 10)
	if !replaced || old != 1 {
		t.Errorf("expected to replace 1, got %d %t", old, replaced)
	}
	if got := chainKeys(&c); got != "[a=0 b=10 c=2]" {
		t.Errorf("unexpected chain %s", got)
	}
	if c.len() != 3 {
		t.Errorf("expected 3 entries, got %d", c.len())
	}
	if n := c.find(strEqual, "z"); n != nil {
		t.Errorf("found missing key: %v", n.Value)
	}
}

func TestChainRemove(t *testing.T) {
	for _, tc := range []struct {
		remove string
		want   string
	}{
		{"a", "[b=1 c=2 d=3]"}, // head
		{"b", "[a=0 c=2 d=3]"}, // interior
		{"d", "[a=0 b=1 c=2]"}, // tail
	} {
		t.Run(tc.remove, func(t *testing.T) {
			var c chain[string, int]
			for i, k := range []string{"a", "b", "c", "d"} {
				c.insert(strEqual, k, i)
			}
			if _, ok := c.remove(strEqual, tc.remove); !ok {
				t.Fatalf("remove %q failed", tc.remove)
			}
			if got := chainKeys(&c); got != tc.want {
				t.Errorf("got %s want %s", got, tc.want)
			}
			// appends after a tail removal must land at the end
			c.insert(strEqual, "e", 4)
			if got := chainKeys(&c); got != tc.want[:len(tc.want)-1]+" e=4]" {
				t.Errorf("append after remove: got %s", got)
			}
		})
	}

	var c chain[string, int]
	c.insert(strEqual, "a", 1)
	if _, ok := c.remove(strEqual, "b"); ok {
		t.Error("removed missing key")
	}
	if v, ok := c.remove(strEqual, "a"); !ok || v != 1 || !c.empty() {
		t.Errorf("expected to empty the chain, got %d %t len %d", v, ok, c.len())
	}
	c.insert(strEqual, "x", 1)
	c.clear()
	if !c.empty() {
		t.Error("chain not empty after clear")
	}
}
