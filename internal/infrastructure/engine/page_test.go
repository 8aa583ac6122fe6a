package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/go-rod/rod/lib/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/bnema/pagehost/internal/application/port"
	portmocks "github.com/bnema/pagehost/internal/application/port/mocks"
	"github.com/bnema/pagehost/internal/domain/entity"
)

type resolveCall struct {
	id     proto.FetchRequestID
	reason proto.NetworkErrorReason
	url    string
}

type fakeResolver struct {
	failed    []resolveCall
	continued []resolveCall
	err       error
}

func (r *fakeResolver) Fail(id proto.FetchRequestID, reason proto.NetworkErrorReason) error {
	r.failed = append(r.failed, resolveCall{id: id, reason: reason})
	return r.err
}

func (r *fakeResolver) Continue(id proto.FetchRequestID, url string) error {
	r.continued = append(r.continued, resolveCall{id: id, url: url})
	return r.err
}

func paused(id, frame, url string) *proto.FetchRequestPaused {
	return &proto.FetchRequestPaused{
		RequestID: proto.FetchRequestID(id),
		FrameID:   proto.PageFrameID(frame),
		Request:   &proto.NetworkRequest{URL: url, Method: "GET"},
	}
}

func TestResolvePaused_CancelAborts(t *testing.T) {
	policy := portmocks.NewMockNavigationPolicy(t)
	policy.EXPECT().DecidePolicy(mock.Anything, mock.Anything).Return(entity.NavigationCancel)
	r := &fakeResolver{}

	resolvePaused(context.Background(), paused("r1", "MAIN", "https://example.com/"), "MAIN",
		port.EngineOptions{Policy: policy}, r)

	assert.Empty(t, r.continued)
	if assert.Len(t, r.failed, 1) {
		assert.Equal(t, proto.FetchRequestID("r1"), r.failed[0].id)
		assert.Equal(t, proto.NetworkErrorReasonAborted, r.failed[0].reason)
	}
}

func TestResolvePaused_AllowContinuesUnchanged(t *testing.T) {
	policy := portmocks.NewMockNavigationPolicy(t)
	policy.EXPECT().DecidePolicy(mock.Anything, mock.MatchedBy(func(req entity.NavigationRequest) bool {
		return req.URL == "http://medium.com/@x" && !req.IsSubframe()
	})).Return(entity.NavigationAllow)
	r := &fakeResolver{}

	resolvePaused(context.Background(), paused("r2", "MAIN", "http://medium.com/@x"), "MAIN",
		port.EngineOptions{Policy: policy, HTTPSPolicy: port.HTTPSKeepAsRequested}, r)

	assert.Empty(t, r.failed)
	assert.Equal(t, []resolveCall{{id: "r2"}}, r.continued)
}

func TestResolvePaused_UpgradeRewritesMainFrameOnly(t *testing.T) {
	policy := portmocks.NewMockNavigationPolicy(t)
	policy.EXPECT().DecidePolicy(mock.Anything, mock.Anything).Return(entity.NavigationAllow)
	opts := port.EngineOptions{Policy: policy, HTTPSPolicy: port.HTTPSUpgrade}
	r := &fakeResolver{}

	main := paused("r3", "MAIN", "http://medium.com/@x")
	main.Request.URLFragment = "#top"
	resolvePaused(context.Background(), main, "MAIN", opts, r)
	resolvePaused(context.Background(), paused("r4", "IFRAME", "http://captcha.example.com/"), "MAIN", opts, r)

	assert.Equal(t, []resolveCall{
		{id: "r3", url: "https://medium.com/@x"},
		{id: "r4"},
	}, r.continued)
}

func TestResolvePaused_NoPolicyAllows(t *testing.T) {
	r := &fakeResolver{err: errors.New("target closed")}

	resolvePaused(context.Background(), paused("r5", "MAIN", "https://example.com/"), "MAIN", port.EngineOptions{}, r)

	assert.Empty(t, r.failed)
	assert.Len(t, r.continued, 1)
}
