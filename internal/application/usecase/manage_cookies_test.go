package usecase_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	portmocks "github.com/bnema/pagehost/internal/application/port/mocks"
	"github.com/bnema/pagehost/internal/application/usecase"
	"github.com/bnema/pagehost/internal/domain/entity"
)

func TestManageCookies_ListFiltersAndSorts(t *testing.T) {
	page := portmocks.NewMockWebPage(t)
	page.EXPECT().Cookies(mock.Anything).Return([]entity.Cookie{
		{Name: "uid", Domain: ".medium.com"},
		{Name: "_ga", Domain: "example.com"},
		{Name: "sid", Domain: "policy.medium.com"},
		{Name: "lang", Domain: "medium.com"},
		{Name: "x", Domain: "notmedium.com"},
	}, nil)

	got, err := usecase.NewManageCookiesUseCase().List(testContext(), page, "Medium.com")
	require.NoError(t, err)

	var names []string
	for _, c := range got {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"lang", "uid", "sid"}, names)
}

func TestManageCookies_ListAll(t *testing.T) {
	page := portmocks.NewMockWebPage(t)
	page.EXPECT().Cookies(mock.Anything).Return([]entity.Cookie{{Name: "b", Domain: "b.com"}, {Name: "a", Domain: "a.com"}}, nil)

	got, err := usecase.NewManageCookiesUseCase().List(testContext(), page, "")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a.com", got[0].Domain)
}

func TestManageCookies_SetDefaultsPath(t *testing.T) {
	page := portmocks.NewMockWebPage(t)
	page.EXPECT().SetCookie(mock.Anything, mock.MatchedBy(func(c entity.Cookie) bool {
		return c.Name == "sid" && c.Path == "/"
	})).Return(nil)

	err := usecase.NewManageCookiesUseCase().Set(testContext(), page, entity.Cookie{Name: "sid", Value: "1", Domain: "medium.com"})
	require.NoError(t, err)
}

func TestManageCookies_SetRejectsInvalid(t *testing.T) {
	page := portmocks.NewMockWebPage(t)

	err := usecase.NewManageCookiesUseCase().Set(testContext(), page, entity.Cookie{Name: "bad name", Domain: "medium.com"})
	require.Error(t, err)
	page.AssertNotCalled(t, "SetCookie", mock.Anything, mock.Anything)
}

func TestManageCookies_EngineError(t *testing.T) {
	page := portmocks.NewMockWebPage(t)
	page.EXPECT().Cookies(mock.Anything).Return(nil, errors.New("target closed"))

	_, err := usecase.NewManageCookiesUseCase().List(testContext(), page, "")
	assert.Error(t, err)
}
