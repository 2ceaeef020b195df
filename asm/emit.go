package asm

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

var stemReplacer = strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ".", "_")

// BaseName derives the shared artifact stem for a group of source
// files: each file's base name with its extension removed and any of
// " /\." replaced by '_', joined with '_'.
func BaseName(files []string) string {
	parts := make([]string, len(files))
	for i, f := range files {
		base := filepath.Base(f)
		if ext := filepath.Ext(base); ext != "" {
			base = strings.TrimSuffix(base, ext)
		}
		parts[i] = stemReplacer.Replace(base)
	}
	return strings.Join(parts, "_")
}

// Emit writes the .ob artifact, and the .ent/.ext artifacts if the
// group produced any entries or external uses.
func (g *Group) Emit(baseName string) error {
	if err := g.writeObject(baseName + ".ob"); err != nil {
		return err
	}
	if err := g.writeEntries(baseName + ".ent"); err != nil {
		return err
	}
	if err := g.writeExterns(baseName + ".ext"); err != nil {
		return err
	}
	return nil
}

func (g *Group) writeObject(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create object file")
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "   %d %d\n", g.icFinal, g.dcFinal)
	for _, n := range g.instructions {
		fmt.Fprintf(w, "%04d %05o\n", n.Address, n.Value)
	}
	for _, n := range g.data {
		fmt.Fprintf(w, "%04d %05o\n", n.Address, n.Value)
	}
	return errors.Wrap(w.Flush(), "flush object file")
}

func (g *Group) writeEntries(path string) error {
	entries := make([]*Label, 0)
	for _, l := range g.Symbols.Labels() {
		if l.Entry {
			entries = append(entries, l)
		}
	}
	if len(entries) == 0 {
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create entries file")
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, l := range entries {
		fmt.Fprintf(w, "%s %03d\n", l.Name, l.Address)
	}
	return errors.Wrap(w.Flush(), "flush entries file")
}

func (g *Group) writeExterns(path string) error {
	if len(g.externalUses) == 0 {
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create externals file")
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, u := range g.externalUses {
		fmt.Fprintf(w, "%s %04d\n", u.Name, u.Address)
	}
	return errors.Wrap(w.Flush(), "flush externals file")
}
