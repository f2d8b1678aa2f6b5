package landmark

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// CommandProvider runs an external detector process. The image path is passed
// as the last argument and the detection document is read from stdout.
type CommandProvider struct {
	Args    []string
	Timeout time.Duration
}

// NewCommandProvider creates a CommandProvider for the given argv prefix.
func NewCommandProvider(args []string, timeout time.Duration) (*CommandProvider, error) {
	if len(args) == 0 || args[0] == "" {
		return nil, errors.New("landmark command is empty")
	}
	return &CommandProvider{Args: args, Timeout: timeout}, nil
}

// Landmarks implements Provider.
func (p *CommandProvider) Landmarks(ctx context.Context, frame Frame) (Set, error) {
	if p.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.Timeout)
		defer cancel()
	}

	argv := append(append([]string{}, p.Args[1:]...), frame.Path)
	cmd := exec.CommandContext(ctx, p.Args[0], argv...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return nil, fmt.Errorf("landmark command %s failed: %w: %s", p.Args[0], err, msg)
		}
		return nil, fmt.Errorf("landmark command %s failed: %w", p.Args[0], err)
	}

	return Decode(stdout.Bytes(), frame.Width, frame.Height)
}
