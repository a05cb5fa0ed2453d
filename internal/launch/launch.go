// Package launch turns a version descriptor plus user settings into a
// fully resolved process invocation.
package launch

import (
	"fmt"
	"slices"
	"strings"

	"github.com/catclient/catclient/internal/descriptor"
	"github.com/catclient/catclient/internal/identity"
	"github.com/catclient/catclient/internal/javaruntime"
	"github.com/catclient/catclient/internal/launcherr"
	"github.com/catclient/catclient/internal/layout"
	"github.com/catclient/catclient/internal/platform"
	"github.com/catclient/catclient/internal/rules"
)

// Request carries everything the planner needs for one launch. It is a
// plain value: the planner keeps no state between calls.
type Request struct {
	Version  string
	Username string
	// RAMGigabytes sets the JVM max heap. Values below 1 fall back to 4.
	RAMGigabytes int
	// ModFolder is carried through from profiles for external tooling;
	// it does not influence the plan.
	ModFolder string
}

// Plan is a ready-to-execute process invocation. Classpath entries stay
// a list until emission time; joining with the platform separator
// happens only in Classpath and CommandLine.
type Plan struct {
	Executable       string
	JVMFlags         []string
	ClasspathEntries []string
	MainClass        string
	GameArguments    []string
}

// Classpath joins the entries with the platform's path-list separator.
func (p *Plan) Classpath(pf platform.Platform) string {
	return strings.Join(p.ClasspathEntries, pf.ClasspathSeparator())
}

// CommandLine assembles the full argv:
// executable, JVM flags, -cp, classpath, main class, game arguments.
func (p *Plan) CommandLine(pf platform.Platform) []string {
	cmd := make([]string, 0, len(p.JVMFlags)+len(p.GameArguments)+4)
	cmd = append(cmd, p.Executable)
	cmd = append(cmd, p.JVMFlags...)
	cmd = append(cmd, "-cp", p.Classpath(pf), p.MainClass)
	cmd = append(cmd, p.GameArguments...)
	return cmd
}

// Resolve builds a launch plan from a decoded descriptor. The
// descriptor and all artifacts are assumed already fetched; Resolve
// itself touches no network.
func Resolve(d *descriptor.Descriptor, req Request, lay layout.Layout, pf platform.Platform) (*Plan, error) {
	if req.Version == "" {
		return nil, fmt.Errorf("%w: no version selected", launcherr.ErrConfig)
	}
	if d == nil {
		return nil, fmt.Errorf("%w: version %q has no readable descriptor", launcherr.ErrConfig, req.Version)
	}
	if req.RAMGigabytes < 1 {
		req.RAMGigabytes = 4
	}

	plan := &Plan{
		Executable: javaruntime.Locate(lay, pf),
		MainClass:  d.ResolvedMainClass(),
	}

	// Classpath: client jar first, then libraries in declaration order.
	plan.ClasspathEntries = append(plan.ClasspathEntries, lay.ClientJarPath(req.Version))
	for _, lib := range d.Libraries {
		if lib.Downloads.Artifact != nil && lib.Downloads.Artifact.Path != "" {
			plan.ClasspathEntries = append(plan.ClasspathEntries, lay.LibraryPath(lib.Downloads.Artifact.Path))
		}
	}

	plan.JVMFlags = append(plan.JVMFlags, fmt.Sprintf("-Xmx%dG", req.RAMGigabytes))
	if d.Arguments != nil {
		plan.JVMFlags = appendApplicable(plan.JVMFlags, d.Arguments.JVM, pf)
	}
	applyPlatformFixups(plan, req.Version, lay, pf)

	ctx := placeholderContext(d, req, lay)
	plan.GameArguments = gameArguments(d, pf, ctx)

	return plan, nil
}

// appendApplicable appends each argument's tokens when its rule set
// accepts the platform. List-valued arguments expand in internal order.
func appendApplicable(dst []string, args []descriptor.Argument, pf platform.Platform) []string {
	for _, arg := range args {
		if arg.Literal() || rules.Evaluate(arg.Rules, pf) {
			dst = append(dst, arg.Values...)
		}
	}
	return dst
}

// applyPlatformFixups runs after the declarative pass. macOS needs the
// game on the first thread; every platform gets a natives path unless
// the descriptor already set one.
func applyPlatformFixups(plan *Plan, version string, lay layout.Layout, pf platform.Platform) {
	if pf == platform.OSX && !slices.Contains(plan.JVMFlags, "-XstartOnFirstThread") {
		plan.JVMFlags = append(plan.JVMFlags, "-XstartOnFirstThread")
	}

	for _, flag := range plan.JVMFlags {
		if strings.HasPrefix(flag, "-Djava.library.path") {
			return
		}
	}
	plan.JVMFlags = append(plan.JVMFlags, "-Djava.library.path="+lay.NativesDir(version))
}

// gameArguments produces the program argument list: the structured form
// goes through rule evaluation, the legacy single-string form splits on
// whitespace into literal tokens. Placeholder substitution applies to
// every token either way.
func gameArguments(d *descriptor.Descriptor, pf platform.Platform, ctx map[string]string) []string {
	var args []string
	switch {
	case d.Arguments != nil && len(d.Arguments.Game) > 0:
		args = appendApplicable(args, d.Arguments.Game, pf)
	case d.LegacyArguments != "":
		args = strings.Fields(d.LegacyArguments)
	}

	for i, a := range args {
		args[i] = substitute(a, ctx)
	}
	return args
}

// placeholderContext computes the substitution values for one launch.
func placeholderContext(d *descriptor.Descriptor, req Request, lay layout.Layout) map[string]string {
	return map[string]string{
		"${auth_player_name}":  req.Username,
		"${version_name}":      req.Version,
		"${game_directory}":    lay.GameDir,
		"${assets_root}":       lay.AssetsDir(),
		"${assets_index_name}": d.AssetIndexID(),
		"${auth_uuid}":         identity.OfflineUUID(req.Username),
		"${auth_access_token}": "0",
		"${user_type}":         "legacy",
		"${version_type}":      d.VersionType(),
		"${user_properties}":   "{}",
		"${quickPlayRealms}":   "",
	}
}

// substitute replaces every occurrence of every known placeholder in one
// token. Replacement is a single literal pass per key: keys are
// non-overlapping markers, so application order does not matter, and
// unmatched markers pass through untouched.
func substitute(token string, ctx map[string]string) string {
	for k, v := range ctx {
		token = strings.ReplaceAll(token, k, v)
	}
	return token
}
