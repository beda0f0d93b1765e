package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/firefly-engineering/vlsm-ctl/internal/errors"
	"github.com/firefly-engineering/vlsm-ctl/internal/logging"
	"github.com/firefly-engineering/vlsm-ctl/internal/render"
	"github.com/firefly-engineering/vlsm-ctl/internal/testutil"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}

func executeCommand(args ...string) (string, string, error) {
	return executeCommandWithInput(nil, args...)
}

func executeCommandWithInput(stdin io.Reader, args ...string) (string, string, error) {
	// Reset flag values before each test
	verbose = false
	jsonOutput = false
	configDir = ""
	allocHostsFile = ""
	allocPlan = ""
	allocFormat = ""
	sizeFormat = ""
	planDescription = ""
	planForce = false
	interactivePlan = ""
	isTerminal = func(*os.File) bool { return false }

	cmd := rootCmd
	cmd.SetArgs(append([]string{}, args...))

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if stdin != nil {
		cmd.SetIn(stdin)
	}

	err := cmd.Execute()

	// Reset args for next test
	cmd.SetArgs(nil)
	cmd.SetOut(nil)
	cmd.SetErr(nil)
	cmd.SetIn(nil)
	logging.SetUserOutput(os.Stdout, os.Stderr)

	return stdout.String(), stderr.String(), err
}

func TestRootCommand_Help(t *testing.T) {
	stdout, _, err := executeCommand("--help")
	if err != nil {
		t.Fatalf("Help command failed: %v", err)
	}

	if !strings.Contains(stdout, "vlsm-ctl") {
		t.Error("Help output should contain 'vlsm-ctl'")
	}
	if !strings.Contains(stdout, "Variable Length Subnet Masking") {
		t.Error("Help output should describe VLSM")
	}
}

func TestRootCommand_NoTerminalShowsHelp(t *testing.T) {
	stdout, _, err := executeCommand()
	if err != nil {
		t.Fatalf("root command failed: %v", err)
	}

	if !strings.Contains(stdout, "Available Commands") {
		t.Error("without a terminal the root command should print help")
	}
	for _, name := range []string{"allocate", "size", "plans", "interactive"} {
		if !strings.Contains(stdout, name) {
			t.Errorf("help should list %q", name)
		}
	}
}

func TestAllocateCommand_Table(t *testing.T) {
	dir := t.TempDir()
	stdout, _, err := executeCommand("--config-dir", dir, "allocate", "192.168.1.0/24", "100", "50", "20")
	if err != nil {
		t.Fatalf("allocate failed: %v", err)
	}

	for _, want := range []string{
		"VLSM subnetting for the initial network: 192.168.1.0/24",
		"192.168.1.0/25",
		"192.168.1.128/26",
		"192.168.1.192/27",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("output missing %q\n%s", want, stdout)
		}
	}
}

func TestAllocateCommand_Alias(t *testing.T) {
	stdout, _, err := executeCommand("--config-dir", t.TempDir(), "alloc", "10.0.0.0/24", "60,20")
	if err != nil {
		t.Fatalf("alloc failed: %v", err)
	}
	if !strings.Contains(stdout, "10.0.0.64/27") {
		t.Errorf("output missing 10.0.0.64/27\n%s", stdout)
	}
}

func TestAllocateCommand_JSON(t *testing.T) {
	stdout, _, err := executeCommand("--config-dir", t.TempDir(), "allocate", "192.168.1.0/24", "20", "100", "50", "-o", "json")
	if err != nil {
		t.Fatalf("allocate failed: %v", err)
	}

	var doc render.Document
	if err := json.Unmarshal([]byte(stdout), &doc); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, stdout)
	}
	if len(doc.Records) != 3 {
		t.Fatalf("len(records) = %d, want 3", len(doc.Records))
	}
	if doc.Records[0].Requested != 100 {
		t.Errorf("records[0].requested = %d, want 100", doc.Records[0].Requested)
	}
}

func TestAllocateCommand_ConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "config.toml"), `
default_network = "10.0.0.0/24"
default_hosts = [60]
format = "json"
`)

	stdout, _, err := executeCommand("--config-dir", dir, "allocate")
	if err != nil {
		t.Fatalf("allocate failed: %v", err)
	}

	var doc render.Document
	if err := json.Unmarshal([]byte(stdout), &doc); err != nil {
		t.Fatalf("config format should apply: %v\n%s", err, stdout)
	}
	if doc.Network != "10.0.0.0/24" || doc.Records[0].SubnetCIDR != "10.0.0.0/26" {
		t.Errorf("doc = %+v", doc)
	}
}

func TestAllocateCommand_HostsFile(t *testing.T) {
	dir := t.TempDir()
	hostsFile := filepath.Join(dir, "hosts.txt")
	writeFile(t, hostsFile, "100\n\n50\n20\n")

	stdout, _, err := executeCommand("--config-dir", dir, "allocate", "192.168.1.0/24", "--hosts-file", hostsFile)
	if err != nil {
		t.Fatalf("allocate failed: %v", err)
	}
	if !strings.Contains(stdout, "192.168.1.192/27") {
		t.Errorf("output missing 192.168.1.192/27\n%s", stdout)
	}
}

func TestAllocateCommand_HostsFromStdin(t *testing.T) {
	stdin := strings.NewReader("100\n50\n")
	stdout, _, err := executeCommandWithInput(stdin, "--config-dir", t.TempDir(), "allocate", "10.1.0.0/24", "--hosts-file", "-", "-o", "yaml")
	if err != nil {
		t.Fatalf("allocate failed: %v", err)
	}
	if !strings.Contains(stdout, "subnetCidr: 10.1.0.128/26") {
		t.Errorf("output missing second subnet\n%s", stdout)
	}
}

func TestAllocateCommand_HostsFileConflict(t *testing.T) {
	_, _, err := executeCommand("--config-dir", t.TempDir(), "allocate", "10.0.0.0/24", "10", "--hosts-file", "-")
	if got := errors.GetExitCode(err); got != errors.ExitInvalidInput {
		t.Errorf("exit code = %d, want %d", got, errors.ExitInvalidInput)
	}
}

func TestAllocateCommand_Normalized(t *testing.T) {
	stdout, stderr, err := executeCommand("--config-dir", t.TempDir(), "allocate", "192.168.1.77/24", "10")
	if err != nil {
		t.Fatalf("allocate failed: %v", err)
	}
	if !strings.Contains(stderr, "host bits set") {
		t.Errorf("stderr should warn about normalization: %q", stderr)
	}
	if !strings.Contains(stdout, "192.168.1.0/28") {
		t.Errorf("output missing 192.168.1.0/28\n%s", stdout)
	}
}

func TestAllocateCommand_Failures(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantErr  string
	}{
		{"invalid network", []string{"192.168.1.0/33", "10"}, errors.ExitInvalidInput, "InvalidNetworkFormat"},
		{"invalid host", []string{"10.0.0.0/24", "ten"}, errors.ExitInvalidInput, "InvalidHostCount"},
		{"zero host", []string{"10.0.0.0/24", "0"}, errors.ExitInvalidInput, "InvalidHostCount"},
		{"no space", []string{"192.168.1.0/24", "100,100,100"}, errors.ExitAllocationFailed, "InsufficientSpace"},
		{"prefix too short", []string{"192.168.1.0/25", "200"}, errors.ExitAllocationFailed, "PrefixTooShort"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"--config-dir", t.TempDir(), "allocate"}, tt.args...)
			stdout, stderr, err := executeCommand(args...)

			if got := errors.GetExitCode(err); got != tt.wantCode {
				t.Errorf("exit code = %d, want %d (err: %v)", got, tt.wantCode, err)
			}
			if !strings.Contains(stderr, tt.wantErr) {
				t.Errorf("stderr should name %s: %q", tt.wantErr, stderr)
			}
			if strings.Contains(stdout, "VLSM subnetting") {
				t.Error("no table should be printed on failure")
			}
		})
	}
}

func TestAllocateCommand_InvalidFormat(t *testing.T) {
	_, _, err := executeCommand("--config-dir", t.TempDir(), "allocate", "10.0.0.0/24", "10", "-o", "xml")
	if got := errors.GetExitCode(err); got != errors.ExitInvalidInput {
		t.Errorf("exit code = %d, want %d", got, errors.ExitInvalidInput)
	}
}

func TestAllocateCommand_BadConfig(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "config.toml"), `format = `)

	_, _, err := executeCommand("--config-dir", dir, "allocate", "10.0.0.0/24", "10")
	if got := errors.GetExitCode(err); got != errors.ExitConfigError {
		t.Errorf("exit code = %d, want %d", got, errors.ExitConfigError)
	}
}

func TestAllocateCommand_UnknownConfigKey(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "config.toml"), `colour = true`)

	_, stderr, err := executeCommand("--config-dir", dir, "allocate", "10.0.0.0/24", "10")
	if err != nil {
		t.Fatalf("allocate failed: %v", err)
	}
	if !strings.Contains(stderr, `Unknown config key "colour"`) {
		t.Errorf("stderr should warn about unknown key: %q", stderr)
	}
}

func TestPlans(t *testing.T) {
	dir := t.TempDir()

	stdout, _, err := executeCommand("--config-dir", dir, "plans")
	if err != nil {
		t.Fatalf("plans failed: %v", err)
	}
	if !strings.Contains(stdout, "No plans found") {
		t.Errorf("empty listing = %q", stdout)
	}

	stdout, _, err = executeCommand("--config-dir", dir, "plans", "save", "office", "192.168.1.0/24", "20", "100,50", "--description", "Main office")
	if err != nil {
		t.Fatalf("plans save failed: %v", err)
	}
	if !strings.Contains(stdout, "Saved plan office") {
		t.Errorf("save output = %q", stdout)
	}

	stdout, _, err = executeCommand("--config-dir", dir, "plans")
	if err != nil {
		t.Fatalf("plans failed: %v", err)
	}
	for _, want := range []string{"PLAN", "office", "192.168.1.0/24", "100,50,20", "Main office"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("listing missing %q\n%s", want, stdout)
		}
	}

	stdout, _, err = executeCommand("--config-dir", dir, "allocate", "--plan", "office")
	if err != nil {
		t.Fatalf("allocate --plan failed: %v", err)
	}
	if !strings.Contains(stdout, "192.168.1.192/27") {
		t.Errorf("plan allocation missing 192.168.1.192/27\n%s", stdout)
	}
}

func TestPlansSave_Existing(t *testing.T) {
	dir := t.TempDir()

	if _, _, err := executeCommand("--config-dir", dir, "plans", "save", "lab", "10.0.0.0/24", "10"); err != nil {
		t.Fatalf("plans save failed: %v", err)
	}

	_, _, err := executeCommand("--config-dir", dir, "plans", "save", "lab", "10.0.0.0/24", "20")
	if got := errors.GetExitCode(err); got != errors.ExitInvalidInput {
		t.Errorf("exit code = %d, want %d", got, errors.ExitInvalidInput)
	}

	if _, _, err := executeCommand("--config-dir", dir, "plans", "save", "lab", "10.0.0.0/24", "20", "--force"); err != nil {
		t.Errorf("plans save --force failed: %v", err)
	}
}

func TestPlansSave_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bad name", []string{"Bad Name", "10.0.0.0/24", "10"}},
		{"bad network", []string{"lab", "10.0.0/24", "10"}},
		{"bad hosts", []string{"lab", "10.0.0.0/24", "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"--config-dir", t.TempDir(), "plans", "save"}, tt.args...)
			_, _, err := executeCommand(args...)
			if got := errors.GetExitCode(err); got != errors.ExitInvalidInput {
				t.Errorf("exit code = %d, want %d (err: %v)", got, errors.ExitInvalidInput, err)
			}
		})
	}
}

func TestAllocateCommand_PlanNotFound(t *testing.T) {
	_, _, err := executeCommand("--config-dir", t.TempDir(), "allocate", "--plan", "ghost")
	if got := errors.GetExitCode(err); got != errors.ExitPlanNotFound {
		t.Errorf("exit code = %d, want %d", got, errors.ExitPlanNotFound)
	}
}

func TestAllocateCommand_PlanConflict(t *testing.T) {
	_, _, err := executeCommand("--config-dir", t.TempDir(), "allocate", "10.0.0.0/24", "--plan", "office")
	if got := errors.GetExitCode(err); got != errors.ExitInvalidInput {
		t.Errorf("exit code = %d, want %d", got, errors.ExitInvalidInput)
	}
}

func TestSizeCommand(t *testing.T) {
	stdout, _, err := executeCommand("--config-dir", t.TempDir(), "size", "20", "100")
	if err != nil {
		t.Fatalf("size failed: %v", err)
	}

	for _, want := range []string{"/25", "255.255.255.128", "/27", "126"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("output missing %q\n%s", want, stdout)
		}
	}
	if strings.Index(stdout, "/25") > strings.Index(stdout, "/27") {
		t.Error("sizes should be listed largest first")
	}
}

func TestSizeCommand_Invalid(t *testing.T) {
	_, _, err := executeCommand("--config-dir", t.TempDir(), "size", "abc")
	if got := errors.GetExitCode(err); got != errors.ExitInvalidInput {
		t.Errorf("exit code = %d, want %d", got, errors.ExitInvalidInput)
	}
}

func TestInteractive_RequiresTerminal(t *testing.T) {
	for _, args := range [][]string{{"interactive"}, {"ui"}, {"plans", "pick"}} {
		_, _, err := executeCommand(append([]string{"--config-dir", t.TempDir()}, args...)...)
		if got := errors.GetExitCode(err); got != errors.ExitTerminalRequired {
			t.Errorf("%v: exit code = %d, want %d", args, got, errors.ExitTerminalRequired)
		}
	}
}

func TestAllocateCommand_FixtureEnv(t *testing.T) {
	env := testutil.NewTestEnv(t)
	env.WriteConfigFixture("valid_config.toml")

	plan, err := testutil.ValidPlan()
	if err != nil {
		t.Fatalf("ValidPlan() error: %v", err)
	}
	env.AddPlan(plan)
	env.AddPlanFixture("invalid_plan.toml", "broken")

	stdout, _, err := executeCommand("--config-dir", env.Paths.ConfigDir, "allocate")
	if err != nil {
		t.Fatalf("allocate failed: %v", err)
	}
	if !strings.Contains(stdout, "network: 10.10.0.0/16") {
		t.Errorf("config defaults and yaml format should apply\n%s", stdout)
	}

	stdout, _, err = executeCommand("--config-dir", env.Paths.ConfigDir, "plans")
	if err != nil {
		t.Fatalf("plans failed: %v", err)
	}
	if !strings.Contains(stdout, "office") || strings.Contains(stdout, "broken") {
		t.Errorf("listing should show only valid plans\n%s", stdout)
	}

	_, _, err = executeCommand("--config-dir", env.Paths.ConfigDir, "allocate", "--plan", "broken")
	if got := errors.GetExitCode(err); got != errors.ExitConfigError {
		t.Errorf("exit code = %d, want %d", got, errors.ExitConfigError)
	}
}
