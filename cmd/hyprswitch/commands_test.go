package main

import (
	"testing"
)

func TestRootCmdAcceptsAnyArgCount(t *testing.T) {
	cmd := newRootCmd()
	for _, args := range [][]string{nil, {"0: foo, Workspace: 1"}, {"a", "b", "c"}} {
		if err := cmd.Args(cmd, args); err != nil {
			t.Errorf("args %q rejected: %v", args, err)
		}
	}
}

func TestMenuCmdRejectsArgs(t *testing.T) {
	cmd := newRootCmd()
	menu, _, err := cmd.Find([]string{"menu"})
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if menu.Name() != "menu" {
		t.Fatalf("expected menu command, got %q", menu.Name())
	}
	if err := menu.Args(menu, []string{"extra"}); err == nil {
		t.Error("expected menu to reject arguments")
	}
}

func TestLabelIsNotTakenForSubcommand(t *testing.T) {
	cmd := newRootCmd()
	found, args, err := cmd.Find([]string{"0: menu, Workspace: 1"})
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if found != cmd {
		t.Errorf("expected root command, got %q", found.Name())
	}
	if len(args) != 1 {
		t.Errorf("expected label to stay a positional arg, got %v", args)
	}
}

func TestFlagsRegistered(t *testing.T) {
	cmd := newRootCmd()
	for _, name := range []string{"config", "debug"} {
		if cmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("flag --%s missing", name)
		}
	}
}

func TestLabelSafeArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"no args", nil, nil},
		{"plain label", []string{"0: foo, Workspace: 1"}, []string{"--", "0: foo, Workspace: 1"}},
		{"negative monitor", []string{"-1: foo, Workspace: 1"}, []string{"--", "-1: foo, Workspace: 1"}},
		{"second label negative", []string{"0: foo, Workspace: 1", "-1: bar, Workspace: 2"}, []string{"--", "0: foo, Workspace: 1", "-1: bar, Workspace: 2"}},
		{"flag before label", []string{"--debug", "-1: foo, Workspace: 1"}, []string{"--debug", "--", "-1: foo, Workspace: 1"}},
		{"already terminated", []string{"--", "-1: foo, Workspace: 1"}, []string{"--", "-1: foo, Workspace: 1"}},
		{"subcommand", []string{"menu"}, []string{"menu"}},
		{"flag", []string{"--debug"}, []string{"--debug"}},
		{"short flag", []string{"-h"}, []string{"-h"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := labelSafeArgs(tt.args)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("arg %d: expected %q, got %q", i, tt.want[i], got[i])
				}
			}
		})
	}
}

func TestDashDashKeepsLabelPositional(t *testing.T) {
	cmd := newRootCmd()
	if err := cmd.ParseFlags([]string{"--", "-1: foo, Workspace: 1"}); err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	args := cmd.Flags().Args()
	if len(args) != 1 || args[0] != "-1: foo, Workspace: 1" {
		t.Errorf("unexpected positional args %q", args)
	}
}

func TestSeveralLabelsReachRootAsPositionals(t *testing.T) {
	cmd := newRootCmd()
	safe := labelSafeArgs([]string{"--debug", "0: foo, Workspace: 1", "-1: bar, Workspace: 2"})
	if err := cmd.ParseFlags(safe); err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	if debug, _ := cmd.Flags().GetBool("debug"); !debug {
		t.Error("expected --debug before the labels to be parsed")
	}
	if args := cmd.Flags().Args(); len(args) != 2 {
		t.Errorf("expected two positional labels, got %q", args)
	}
}
