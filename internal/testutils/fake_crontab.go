package testutils

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/kballard/go-shellquote"
	"github.com/spf13/afero"

	"github.com/bnema/cronkeeper/internal/domain"
)

// FakeCrontab emulates the crontab installer against in-memory tables. It
// understands the default command templates: "-l", "-r", "< file" and
// "-u user". Table files are read from fs.
type FakeCrontab struct {
	mu     sync.Mutex
	fs     afero.Fs
	tables map[string][]string

	// CurrentUser is the user selected when no -u flag is given.
	CurrentUser string

	// InstallError, when set, makes every install fail with this output.
	InstallError string

	commands []string
}

// NewFakeCrontab creates a fake installer reading table files from fs.
func NewFakeCrontab(fs afero.Fs) *FakeCrontab {
	return &FakeCrontab{
		fs:          fs,
		tables:      make(map[string][]string),
		CurrentUser: "tester",
	}
}

// Run implements out.ProcessRunner.
func (f *FakeCrontab) Run(ctx context.Context, commandLine string) (domain.ProcessResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.ProcessResult{}, err
	}

	words, err := shellquote.Split(commandLine)
	if err != nil {
		return domain.ProcessResult{}, fmt.Errorf("fake crontab: %w", err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.commands = append(f.commands, commandLine)

	user := f.CurrentUser
	var mode, file string
	for i := 1; i < len(words); i++ {
		switch words[i] {
		case "-u":
			if i+1 >= len(words) {
				return usage(), nil
			}
			user = words[i+1]
			i++
		case "-l", "-r":
			mode = words[i]
		case "<":
			if i+1 >= len(words) {
				return usage(), nil
			}
			mode = "<"
			file = words[i+1]
			i++
		case "2>&1":
		default:
			return usage(), nil
		}
	}

	switch mode {
	case "-l":
		lines, ok := f.tables[user]
		if !ok {
			return noCrontab(user), nil
		}
		return domain.ProcessResult{Output: slices.Clone(lines)}, nil
	case "-r":
		if _, ok := f.tables[user]; !ok {
			return noCrontab(user), nil
		}
		delete(f.tables, user)
		return domain.ProcessResult{}, nil
	case "<":
		data, err := afero.ReadFile(f.fs, file)
		if err != nil {
			return domain.ProcessResult{
				Output:   []string{fmt.Sprintf("%s: No such file or directory", file)},
				ExitCode: 1,
			}, nil
		}
		if f.InstallError != "" {
			return domain.ProcessResult{Output: []string{f.InstallError}, ExitCode: 1}, nil
		}
		f.tables[user] = strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
		return domain.ProcessResult{}, nil
	default:
		return usage(), nil
	}
}

// Table returns the installed lines of user and whether a table exists.
func (f *FakeCrontab) Table(user string) ([]string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	lines, ok := f.tables[user]
	return slices.Clone(lines), ok
}

// SetTable installs lines for user directly.
func (f *FakeCrontab) SetTable(user string, lines []string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tables[user] = slices.Clone(lines)
}

// Commands returns every command line run so far.
func (f *FakeCrontab) Commands() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.commands)
}

func noCrontab(user string) domain.ProcessResult {
	return domain.ProcessResult{Output: []string{"no crontab for " + user}, ExitCode: 1}
}

func usage() domain.ProcessResult {
	return domain.ProcessResult{Output: []string{"crontab: usage error"}, ExitCode: 1}
}
