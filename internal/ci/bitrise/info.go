package bitrise

import (
	"strconv"

	"wrench.dev/wrench/internal/ci"
)

// ApplicationInfo provides Bitrise application information
type ApplicationInfo struct {
	env ci.EnvReader
}

// ApplicationTitle returns BITRISE_APP_TITLE
func (i ApplicationInfo) ApplicationTitle() string { return i.env.String("BITRISE_APP_TITLE") }

// ApplicationURL returns BITRISE_APP_URL
func (i ApplicationInfo) ApplicationURL() string { return i.env.String("BITRISE_APP_URL") }

// AppSlug returns BITRISE_APP_SLUG
func (i ApplicationInfo) AppSlug() string { return i.env.String("BITRISE_APP_SLUG") }

// BuildInfo provides Bitrise build information
type BuildInfo struct {
	env ci.EnvReader
}

// BuildNumber returns BITRISE_BUILD_NUMBER, or 0
func (i BuildInfo) BuildNumber() int { return i.env.Int("BITRISE_BUILD_NUMBER") }

// BuildURL returns BITRISE_BUILD_URL
func (i BuildInfo) BuildURL() string { return i.env.String("BITRISE_BUILD_URL") }

// BuildSlug returns BITRISE_BUILD_SLUG
func (i BuildInfo) BuildSlug() string { return i.env.String("BITRISE_BUILD_SLUG") }

// BuildTriggerTimestamp returns BITRISE_BUILD_TRIGGER_TIMESTAMP as reported by Bitrise
func (i BuildInfo) BuildTriggerTimestamp() string {
	return i.env.String("BITRISE_BUILD_TRIGGER_TIMESTAMP")
}

// BuildStatus reports whether BITRISE_BUILD_STATUS is "true"
func (i BuildInfo) BuildStatus() bool { return i.env.Bool("BITRISE_BUILD_STATUS") }

// DirectoryInfo provides Bitrise directory information
type DirectoryInfo struct {
	env ci.EnvReader
}

// SourceDirectory returns BITRISE_SOURCE_DIR
func (i DirectoryInfo) SourceDirectory() string { return i.env.String("BITRISE_SOURCE_DIR") }

// DeployDirectory returns BITRISE_DEPLOY_DIR
func (i DirectoryInfo) DeployDirectory() string { return i.env.String("BITRISE_DEPLOY_DIR") }

// ProvisioningInfo provides Bitrise code signing information
type ProvisioningInfo struct {
	env ci.EnvReader
}

// ProvisionURL returns BITRISE_PROVISION_URL
func (i ProvisioningInfo) ProvisionURL() string { return i.env.String("BITRISE_PROVISION_URL") }

// CertificateURL returns BITRISE_CERTIFICATE_URL
func (i ProvisioningInfo) CertificateURL() string { return i.env.String("BITRISE_CERTIFICATE_URL") }

// CertificatePassphrase returns BITRISE_CERTIFICATE_PASSPHRASE
func (i ProvisioningInfo) CertificatePassphrase() string {
	return i.env.String("BITRISE_CERTIFICATE_PASSPHRASE")
}

// RepositoryInfo provides Bitrise repository information
type RepositoryInfo struct {
	env ci.EnvReader
}

// GitRepositoryURL returns GIT_REPOSITORY_URL
func (i RepositoryInfo) GitRepositoryURL() string { return i.env.String("GIT_REPOSITORY_URL") }

// GitBranch returns BITRISE_GIT_BRANCH
func (i RepositoryInfo) GitBranch() string { return i.env.String("BITRISE_GIT_BRANCH") }

// GitTag returns BITRISE_GIT_TAG
func (i RepositoryInfo) GitTag() string { return i.env.String("BITRISE_GIT_TAG") }

// GitCommit returns BITRISE_GIT_COMMIT
func (i RepositoryInfo) GitCommit() string { return i.env.String("BITRISE_GIT_COMMIT") }

// GitMessage returns BITRISE_GIT_MESSAGE
func (i RepositoryInfo) GitMessage() string { return i.env.String("BITRISE_GIT_MESSAGE") }

// PullRequest returns BITRISE_PULL_REQUEST, or 0 outside pull request builds
func (i RepositoryInfo) PullRequest() int { return i.env.Int("BITRISE_PULL_REQUEST") }

// WorkflowInfo provides Bitrise workflow information
type WorkflowInfo struct {
	env ci.EnvReader
}

// WorkflowID returns BITRISE_TRIGGERED_WORKFLOW_ID
func (i WorkflowInfo) WorkflowID() string { return i.env.String("BITRISE_TRIGGERED_WORKFLOW_ID") }

// WorkflowTitle returns BITRISE_TRIGGERED_WORKFLOW_TITLE
func (i WorkflowInfo) WorkflowTitle() string {
	return i.env.String("BITRISE_TRIGGERED_WORKFLOW_TITLE")
}

// EnvironmentInfo groups every Bitrise view. Each view reads the environment on every call.
type EnvironmentInfo struct {
	Application  ApplicationInfo
	Build        BuildInfo
	Directory    DirectoryInfo
	Provisioning ProvisioningInfo
	Repository   RepositoryInfo
	Workflow     WorkflowInfo
}

func newEnvironmentInfo(env ci.EnvReader) EnvironmentInfo {
	return EnvironmentInfo{
		Application:  ApplicationInfo{env: env},
		Build:        BuildInfo{env: env},
		Directory:    DirectoryInfo{env: env},
		Provisioning: ProvisioningInfo{env: env},
		Repository:   RepositoryInfo{env: env},
		Workflow:     WorkflowInfo{env: env},
	}
}

// Fields lists every value for display
func (e EnvironmentInfo) Fields() []ci.Field {
	return []ci.Field{
		{Section: "Application", Variable: "BITRISE_APP_TITLE", Value: e.Application.ApplicationTitle()},
		{Section: "Application", Variable: "BITRISE_APP_URL", Value: e.Application.ApplicationURL()},
		{Section: "Application", Variable: "BITRISE_APP_SLUG", Value: e.Application.AppSlug()},
		{Section: "Build", Variable: "BITRISE_BUILD_NUMBER", Value: strconv.Itoa(e.Build.BuildNumber())},
		{Section: "Build", Variable: "BITRISE_BUILD_URL", Value: e.Build.BuildURL()},
		{Section: "Build", Variable: "BITRISE_BUILD_SLUG", Value: e.Build.BuildSlug()},
		{Section: "Build", Variable: "BITRISE_BUILD_TRIGGER_TIMESTAMP", Value: e.Build.BuildTriggerTimestamp()},
		{Section: "Build", Variable: "BITRISE_BUILD_STATUS", Value: strconv.FormatBool(e.Build.BuildStatus())},
		{Section: "Directory", Variable: "BITRISE_SOURCE_DIR", Value: e.Directory.SourceDirectory()},
		{Section: "Directory", Variable: "BITRISE_DEPLOY_DIR", Value: e.Directory.DeployDirectory()},
		{Section: "Provisioning", Variable: "BITRISE_PROVISION_URL", Value: e.Provisioning.ProvisionURL(), Secret: true},
		{Section: "Provisioning", Variable: "BITRISE_CERTIFICATE_URL", Value: e.Provisioning.CertificateURL(), Secret: true},
		{Section: "Provisioning", Variable: "BITRISE_CERTIFICATE_PASSPHRASE", Value: e.Provisioning.CertificatePassphrase(), Secret: true},
		{Section: "Repository", Variable: "GIT_REPOSITORY_URL", Value: e.Repository.GitRepositoryURL()},
		{Section: "Repository", Variable: "BITRISE_GIT_BRANCH", Value: e.Repository.GitBranch()},
		{Section: "Repository", Variable: "BITRISE_GIT_TAG", Value: e.Repository.GitTag()},
		{Section: "Repository", Variable: "BITRISE_GIT_COMMIT", Value: e.Repository.GitCommit()},
		{Section: "Repository", Variable: "BITRISE_GIT_MESSAGE", Value: e.Repository.GitMessage()},
		{Section: "Repository", Variable: "BITRISE_PULL_REQUEST", Value: strconv.Itoa(e.Repository.PullRequest())},
		{Section: "Workflow", Variable: "BITRISE_TRIGGERED_WORKFLOW_ID", Value: e.Workflow.WorkflowID()},
		{Section: "Workflow", Variable: "BITRISE_TRIGGERED_WORKFLOW_TITLE", Value: e.Workflow.WorkflowTitle()},
	}
}
