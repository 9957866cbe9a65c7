package provision

import (
	"context"
	"errors"
	"os"

	"github.com/rkristelijn/glab-tui-install/internal/platform"
	"github.com/rkristelijn/glab-tui-install/internal/toolchain"
)

// State is a step of the provisioning run.
type State int

const (
	StateDetect State = iota
	StateLocate
	StateBuild
	StateFinalize
	StateVerify
	StateDone
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateDetect:
		return "detect"
	case StateLocate:
		return "locate"
	case StateBuild:
		return "build"
	case StateFinalize:
		return "finalize"
	case StateVerify:
		return "verify"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}

// Options configures a Provisioner. Zero values select defaults.
type Options struct {
	// Root is the package root holding go.mod. When empty it is found by
	// walking up from the working directory; discovery never selects the
	// installer's own module.
	Root string
	// Host is the descriptor to resolve. When zero, DetectHost is used.
	Host platform.HostDescriptor
	// Toolchain defaults to "go" on PATH.
	Toolchain *toolchain.Toolchain
	Mode      Mode
	// LDFlags defaults to toolchain.DefaultLDFlags.
	LDFlags string
	// Environ supplies the ambient environment; defaults to os.Environ.
	Environ func() []string

	Reporter *Reporter
	Logger   Logger
}

// Provisioner builds and installs the binary.
type Provisioner struct {
	opts  Options
	state State
}

// Result describes a completed install.
type Result struct {
	Host     platform.HostDescriptor
	Platform platform.CanonicalPlatform
	Target   InstallTarget
	Package  *Package
}

// Plan is what a run would do, computed without side effects.
type Plan struct {
	Host      platform.HostDescriptor    `json:"host"`
	Platform  platform.CanonicalPlatform `json:"platform"`
	Root      string                     `json:"root"`
	Target    InstallTarget              `json:"target"`
	Overrides map[string]string          `json:"env"`
	Args      []string                   `json:"args"`
}

// New returns a Provisioner for opts.
func New(opts Options) *Provisioner {
	if opts.Host == (platform.HostDescriptor{}) {
		opts.Host = platform.DetectHost()
	}
	if opts.Toolchain == nil {
		opts.Toolchain = toolchain.New("", "")
	}
	if opts.Mode == "" {
		opts.Mode = ModeSource
	}
	if opts.Environ == nil {
		opts.Environ = os.Environ
	}
	if opts.Reporter == nil {
		opts.Reporter = NewReporter(os.Stdout, os.Stderr)
	}
	if opts.Logger == nil {
		opts.Logger = noopLogger{}
	}
	return &Provisioner{opts: opts}
}

// State returns the last state the run entered.
func (p *Provisioner) State() State {
	return p.state
}

func (p *Provisioner) enter(s State) {
	p.state = s
	p.opts.Logger.Debug("provision state", "state", s.String())
}

// Plan resolves the host and computes the install target and build
// invocation without touching the filesystem or spawning processes.
func (p *Provisioner) Plan() (*Plan, error) {
	canonical, err := platform.Resolve(p.opts.Host)
	if err != nil {
		return nil, err
	}
	if p.opts.Mode == ModeRelease {
		return nil, ErrReleaseModeUnsupported
	}
	root, err := p.root()
	if err != nil {
		return nil, err
	}
	target := NewInstallTarget(root, canonical)
	req := toolchain.BuildRequest{Dir: root, Output: target.Path, LDFlags: p.opts.LDFlags}
	return &Plan{
		Host:      p.opts.Host,
		Platform:  canonical,
		Root:      root,
		Target:    target,
		Overrides: toolchain.Overrides(canonical),
		Args:      append([]string{p.opts.Toolchain.Binary}, req.Args()...),
	}, nil
}

// Install runs the full provisioning sequence. A toolchain older than the
// go.mod "go" directive is only logged; the build itself decides whether it
// can proceed. The returned error is one of
// *platform.UnsupportedPlatformError, *platform.UnsupportedArchitectureError,
// *toolchain.MissingError, *toolchain.BuildFailedError, *FilesystemError or
// ErrReleaseModeUnsupported.
func (p *Provisioner) Install(ctx context.Context) (*Result, error) {
	log := p.opts.Logger
	report := p.opts.Reporter

	report.Start()

	p.enter(StateDetect)
	canonical, err := platform.Resolve(p.opts.Host)
	if err != nil {
		return nil, err
	}
	log.Debug("resolved platform", "host", p.opts.Host.String(), "platform", canonical.String())

	if p.opts.Mode == ModeRelease {
		return nil, ErrReleaseModeUnsupported
	}

	p.enter(StateLocate)
	root, err := p.root()
	if err != nil {
		return nil, err
	}
	target := NewInstallTarget(root, canonical)
	if err := os.MkdirAll(target.Dir, 0755); err != nil {
		return nil, &FilesystemError{Op: OpMkdir, Path: target.Dir, Err: err}
	}
	log.Debug("install directory ready", "dir", target.Dir)

	p.enter(StateBuild)
	report.Building()
	tc := p.opts.Toolchain
	if err := tc.Probe(ctx); err != nil {
		return nil, err
	}
	pkg := p.loadPackage(root)
	if pkg != nil && pkg.GoVersion != "" {
		if err := tc.CheckMinimum(ctx, pkg.GoVersion); err != nil {
			log.Warn("toolchain version check", "required", pkg.GoVersion, "error", err)
		}
	}

	env := toolchain.BuildEnv(p.opts.Environ(), canonical)
	req := toolchain.BuildRequest{
		Dir:     root,
		Output:  target.Path,
		Env:     env,
		LDFlags: p.opts.LDFlags,
	}
	log.Debug("invoking toolchain", "binary", tc.Binary, "args", req.Args(), "dir", root)
	if err := tc.Build(ctx, req); err != nil {
		return nil, err
	}

	p.enter(StateFinalize)
	if canonical.IsWindows() {
		log.Debug("skipping permission bits for windows target")
	} else if err := platform.Chmod(canonical.OS, target.Path, platform.ExecutablePerm); err != nil {
		return nil, &FilesystemError{Op: OpChmod, Path: target.Path, Err: err}
	}

	p.enter(StateVerify)
	if err := verify(canonical.OS, target.Path); err != nil {
		return nil, err
	}

	p.enter(StateDone)
	report.Success()

	return &Result{
		Host:     p.opts.Host,
		Platform: canonical,
		Target:   target,
		Package:  pkg,
	}, nil
}

func (p *Provisioner) root() (string, error) {
	if p.opts.Root != "" {
		return p.opts.Root, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", &FilesystemError{Op: OpRoot, Path: ".", Err: err}
	}
	return FindRoot(wd)
}

func (p *Provisioner) loadPackage(root string) *Package {
	pkg, err := LoadPackage(root)
	if err != nil {
		p.opts.Logger.Debug("no package metadata", "root", root, "error", err)
		return nil
	}
	p.opts.Logger.Debug("package metadata", "module", pkg.Module, "go", pkg.GoVersion)
	return pkg
}

var (
	errNotRegular    = errors.New("produced path is not a regular file")
	errEmptyBinary   = errors.New("produced file is empty")
	errNotExecutable = errors.New("produced file is not executable")
)

// verify checks the produced file is a non-empty regular file the target
// can execute.
func verify(target platform.OSFamily, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return &FilesystemError{Op: OpVerify, Path: path, Err: err}
	}
	if !info.Mode().IsRegular() {
		return &FilesystemError{Op: OpVerify, Path: path, Err: errNotRegular}
	}
	if info.Size() == 0 {
		return &FilesystemError{Op: OpVerify, Path: path, Err: errEmptyBinary}
	}
	if !platform.IsExecutable(target, info) {
		return &FilesystemError{Op: OpVerify, Path: path, Err: errNotExecutable}
	}
	return nil
}
