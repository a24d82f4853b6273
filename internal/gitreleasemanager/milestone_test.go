package gitreleasemanager_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"wrench.dev/wrench/internal/gitreleasemanager"
	"wrench.dev/wrench/testhelpers"
)

func TestCloseMilestone(t *testing.T) {
	h := testhelpers.NewToolHarness(t, nil, "grm")
	closer := gitreleasemanager.NewMilestoneCloser(h.Deps)

	settings := &gitreleasemanager.CloseSettings{}
	settings.LogFilePath = "grm.log"

	err := closer.Close(context.Background(), gitreleasemanager.Token{Token: "tkn"}, "foo", "bar", "1.2.0", settings)
	require.NoError(t, err)

	inv, _ := h.Process.Last()
	require.Equal(t, h.Abs("bin", "grm"), inv.FilePath)
	require.Equal(t, []string{"close", "--token", "tkn", "-o", "foo", "-r", "bar", "-m", "1.2.0", "-l", h.Abs("grm.log")}, inv.Args())
}

func TestCloseMilestoneRequiresMilestone(t *testing.T) {
	h := testhelpers.NewToolHarness(t, nil, "grm")
	closer := gitreleasemanager.NewMilestoneCloser(h.Deps)

	err := closer.Close(context.Background(), gitreleasemanager.Token{Token: "tkn"}, "foo", "bar", " ", &gitreleasemanager.CloseSettings{})
	requireArgumentError(t, err, "milestone")
	require.Empty(t, h.Process.Invocations())
}

func TestPublish(t *testing.T) {
	h := testhelpers.NewToolHarness(t, nil, "gitreleasemanager")
	publisher := gitreleasemanager.NewPublisher(h.Deps)

	creds := gitreleasemanager.UsernamePassword{UserName: "bob", Password: "pw"}
	err := publisher.Publish(context.Background(), creds, "foo", "bar", "v1.2.0", &gitreleasemanager.PublishSettings{})
	require.NoError(t, err)

	inv, _ := h.Process.Last()
	require.Equal(t, []string{"publish", "-u", "bob", "-p", "pw", "-o", "foo", "-r", "bar", "-t", "v1.2.0"}, inv.Args())
}

func TestPublishValidation(t *testing.T) {
	h := testhelpers.NewToolHarness(t, nil, "gitreleasemanager")
	publisher := gitreleasemanager.NewPublisher(h.Deps)

	err := publisher.Publish(context.Background(), gitreleasemanager.Token{Token: "t"}, "foo", "bar", "", &gitreleasemanager.PublishSettings{})
	requireArgumentError(t, err, "tagName")

	err = publisher.Publish(context.Background(), gitreleasemanager.Token{Token: "t"}, "foo", "bar", "v1", nil)
	requireArgumentError(t, err, "settings")

	require.Empty(t, h.Process.Invocations())
}
