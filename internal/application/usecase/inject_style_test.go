package usecase_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	portmocks "github.com/bnema/pagehost/internal/application/port/mocks"
	"github.com/bnema/pagehost/internal/application/usecase"
)

func TestInjectStyle_PassesCSSAsArgument(t *testing.T) {
	page := portmocks.NewMockWebPage(t)
	validator := portmocks.NewMockScriptValidator(t)

	validator.EXPECT().ValidateFunctionBody(mock.Anything, []string{"css", "id"}).Return(nil)
	page.EXPECT().CallJavaScript(mock.Anything, mock.Anything, mock.MatchedBy(func(args map[string]any) bool {
		return args["css"] == "body, main, div { background-color: rgba(255, 255, 191) !important; }" &&
			args["id"] == usecase.InjectedStyleElementID
	})).Return(true, nil)

	uc := usecase.NewInjectStyleUseCase(validator, usecase.InjectStyleConfig{Enabled: true, BackgroundColor: "rgba(255, 255, 191)"})
	require.NoError(t, uc.Execute(testContext(), page))
}

func TestInjectStyle_Disabled(t *testing.T) {
	page := portmocks.NewMockWebPage(t)
	uc := usecase.NewInjectStyleUseCase(nil, usecase.InjectStyleConfig{Enabled: false, BackgroundColor: "red"})

	require.NoError(t, uc.Execute(testContext(), page))
	page.AssertNotCalled(t, "CallJavaScript", mock.Anything, mock.Anything, mock.Anything)
}

func TestInjectStyle_ScriptErrorIsReturned(t *testing.T) {
	page := portmocks.NewMockWebPage(t)
	page.EXPECT().CallJavaScript(mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("Execution context was destroyed"))

	uc := usecase.NewInjectStyleUseCase(nil, usecase.InjectStyleConfig{Enabled: true, BackgroundColor: "#ffffbf"})
	err := uc.Execute(testContext(), page)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "inject style")
}

func TestInjectStyle_RejectedScriptNeverReachesEngine(t *testing.T) {
	page := portmocks.NewMockWebPage(t)
	validator := portmocks.NewMockScriptValidator(t)
	validator.EXPECT().ValidateFunctionBody(mock.Anything, mock.Anything).Return(errors.New("SyntaxError"))

	uc := usecase.NewInjectStyleUseCase(validator, usecase.InjectStyleConfig{Enabled: true, BackgroundColor: "red"})
	require.Error(t, uc.Execute(testContext(), page))
	page.AssertNotCalled(t, "CallJavaScript", mock.Anything, mock.Anything, mock.Anything)
}

func TestInjectStyle_ToggleHidesThenShows(t *testing.T) {
	page := portmocks.NewMockWebPage(t)
	uc := usecase.NewInjectStyleUseCase(nil, usecase.InjectStyleConfig{Enabled: true, BackgroundColor: "#ffffbf"})

	page.EXPECT().CallJavaScript(mock.Anything, mock.MatchedBy(func(body string) bool {
		return strings.Contains(body, "element.remove()")
	}), map[string]any{"id": usecase.InjectedStyleElementID}).Return(true, nil).Once()

	shown, err := uc.Toggle(testContext(), page)
	require.NoError(t, err)
	assert.False(t, shown)
	assert.False(t, uc.Enabled())

	// Hidden: page changes inject nothing.
	require.NoError(t, uc.Execute(testContext(), page))

	page.EXPECT().CallJavaScript(mock.Anything, mock.Anything, mock.MatchedBy(func(args map[string]any) bool {
		return args["css"] == usecase.BackgroundCSS("#ffffbf")
	})).Return(true, nil).Once()

	shown, err = uc.Toggle(testContext(), page)
	require.NoError(t, err)
	assert.True(t, shown)
	assert.True(t, uc.Enabled())
}

func TestInjectStyle_ToggleStartsFromConfig(t *testing.T) {
	page := portmocks.NewMockWebPage(t)
	page.EXPECT().CallJavaScript(mock.Anything, mock.Anything, mock.MatchedBy(func(args map[string]any) bool {
		_, hasCSS := args["css"]
		return hasCSS
	})).Return(true, nil)

	uc := usecase.NewInjectStyleUseCase(nil, usecase.InjectStyleConfig{Enabled: false, BackgroundColor: "red"})
	shown, err := uc.Toggle(testContext(), page)
	require.NoError(t, err)
	assert.True(t, shown)
}

func TestInjectStyle_ToggleWithoutPage(t *testing.T) {
	uc := usecase.NewInjectStyleUseCase(nil, usecase.InjectStyleConfig{Enabled: true, BackgroundColor: "red"})

	shown, err := uc.Toggle(testContext(), nil)
	assert.ErrorIs(t, err, usecase.ErrNoPage)
	assert.True(t, shown, "state unchanged without a page")
}

func TestInjectStyle_RemoveErrorIsReturned(t *testing.T) {
	page := portmocks.NewMockWebPage(t)
	page.EXPECT().CallJavaScript(mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("target closed"))

	uc := usecase.NewInjectStyleUseCase(nil, usecase.InjectStyleConfig{})
	err := uc.Remove(testContext(), page)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "remove style")
}
