package asm

import "testing"

func TestBaseName(t *testing.T) {
	got := BaseName([]string{"src/prog one.as", "lib.util.as"})
	want := "prog_one_lib_util"
	if got != want {
		t.Fatalf("BaseName() = %q, want %q", got, want)
	}
}

func TestBaseNameSingleFile(t *testing.T) {
	if got := BaseName([]string{"main.as"}); got != "main" {
		t.Fatalf("BaseName() = %q, want main", got)
	}
}
