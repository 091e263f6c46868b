// Package process inspects the processes running inside the shell so the
// status line can name the foreground program.
package process

import (
	"bytes"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// Info contains information about a running process.
type Info struct {
	PID  int
	PPID int
	// PGID is the process group; TPGID is the foreground process group of
	// the process's controlling terminal, or -1 without one.
	PGID    int
	TPGID   int
	Command string // Full command line with arguments
}

// List returns every process visible to ps.
func List() ([]Info, error) {
	cmd := exec.Command("ps", "-eo", "pid=,ppid=,pgid=,tpgid=,args=")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("ps failed: %w: %s", err, stderr.String())
	}
	return parseList(stdout.String()), nil
}

// parseList parses "PID PPID PGID TPGID COMMAND..." lines, skipping lines
// that do not have that shape.
func parseList(out string) []Info {
	var procs []Info
	for line := range strings.SplitSeq(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 5 {
			continue
		}

		var nums [4]int
		ok := true
		for i := range nums {
			n, err := strconv.Atoi(fields[i])
			if err != nil {
				ok = false
				break
			}
			nums[i] = n
		}
		if !ok {
			continue
		}

		procs = append(procs, Info{
			PID:     nums[0],
			PPID:    nums[1],
			PGID:    nums[2],
			TPGID:   nums[3],
			Command: strings.Join(fields[4:], " "),
		})
	}
	return procs
}

func childrenOf(procs []Info, pid int) []Info {
	var children []Info
	for _, p := range procs {
		if p.PPID == pid {
			children = append(children, p)
		}
	}
	return children
}

// Foreground returns the program in the foreground of the shell's terminal.
// Returns the command name (first word) and full command line.
func Foreground(shellPID int) (name string, cmdLine string, err error) {
	procs, err := List()
	if err != nil {
		return "", "", err
	}
	p, ok := foreground(procs, shellPID)
	if !ok {
		return "", "", fmt.Errorf("process %d not found", shellPID)
	}
	return extractCommandName(p.Command), p.Command, nil
}

// foreground picks the leader of the terminal's foreground process group.
// The shell itself is returned at an idle prompt. Without terminal data
// (ps reports no tpgid) it falls back to the shell's first child.
func foreground(procs []Info, shellPID int) (Info, bool) {
	var shell Info
	found := false
	for _, p := range procs {
		if p.PID == shellPID {
			shell, found = p, true
			break
		}
	}
	if !found {
		return Info{}, false
	}

	if shell.TPGID <= 0 {
		if children := childrenOf(procs, shellPID); len(children) > 0 {
			return children[0], true
		}
		return shell, true
	}
	if shell.TPGID == shell.PGID {
		return shell, true
	}

	// Prefer the group leader, then any member of the group
	var member *Info
	for i, p := range procs {
		if p.PGID != shell.TPGID {
			continue
		}
		if p.PID == shell.TPGID {
			return p, true
		}
		if member == nil {
			member = &procs[i]
		}
	}
	if member != nil {
		return *member, true
	}
	return shell, true
}

// extractCommandName extracts the command name from a full command line.
// Handles paths like "/usr/local/bin/node" -> "node" and login shells like
// "-bash" -> "bash".
func extractCommandName(cmdLine string) string {
	// Split on whitespace to get the command (first word)
	parts := strings.Fields(cmdLine)
	if len(parts) == 0 {
		return ""
	}

	cmd := parts[0]

	// Extract basename from path
	if idx := strings.LastIndex(cmd, "/"); idx >= 0 {
		cmd = cmd[idx+1:]
	}

	return strings.TrimPrefix(cmd, "-")
}
