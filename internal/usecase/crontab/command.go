package crontab

import (
	"strings"

	"github.com/kballard/go-shellquote"
)

// Template tokens.
const (
	TokenCrontab = "{crontab}"
	TokenUser    = "{user}"
	TokenFile    = "{file}"
)

// CommandTemplates are the installer command lines, with tokens substituted
// at run time.
type CommandTemplates struct {
	List      string
	Install   string
	RemoveAll string
}

// DefaultCommandTemplates returns the templates for a standard crontab binary.
func DefaultCommandTemplates() CommandTemplates {
	return CommandTemplates{
		List:      "{crontab} {user} -l 2>&1",
		Install:   "{crontab} {user} < {file} 2>&1",
		RemoveAll: "{crontab} {user} -r 2>&1",
	}
}

func (t CommandTemplates) withDefaults() CommandTemplates {
	def := DefaultCommandTemplates()
	if t.List == "" {
		t.List = def.List
	}
	if t.Install == "" {
		t.Install = def.Install
	}
	if t.RemoveAll == "" {
		t.RemoveAll = def.RemoveAll
	}
	return t
}

// composeCommand substitutes the tokens of template. The binary path is used
// verbatim; the username and file path are shell-quoted so each reaches the
// installer as a single literal argument.
func composeCommand(template, binPath, username, file string) string {
	user := ""
	if username != "" {
		user = " -u " + shellquote.Join(username)
	}

	pairs := []string{TokenCrontab, binPath, TokenUser, user}
	if strings.Contains(template, TokenFile) {
		pairs = append(pairs, TokenFile, shellquote.Join(file))
	}

	return strings.NewReplacer(pairs...).Replace(template)
}
