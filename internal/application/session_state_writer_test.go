package application

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/kintelligence/strawberry-cookie-tools/internal/adapters/sessionfile"
	"github.com/kintelligence/strawberry-cookie-tools/internal/domain"
	"github.com/kintelligence/strawberry-cookie-tools/internal/ports/mocks"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sessionRoot = "/home/player/Kintelligence/Plugin/StrawberryCookieTools"

func fixedPID() int { return 4242 }

func strPtr(value string) *string { return &value }

func TestSessionStateWriterIgnoresNoSessionLogin(t *testing.T) {
	store := mocks.NewMockSessionStore(t)
	source := mocks.NewMockSessionSource(t)
	writer := NewSessionStateWriter(store, source, fixedPID, discardLogger())

	source.EXPECT().SessionID().Return(domain.NoSession).Once()

	writer.OnLogin(context.Background())
	assert.Equal(t, domain.NoSession, writer.Current())
}

func TestSessionStateWriterLoginSavesRecord(t *testing.T) {
	store := mocks.NewMockSessionStore(t)
	source := mocks.NewMockSessionSource(t)
	writer := NewSessionStateWriter(store, source, fixedPID, discardLogger())

	source.EXPECT().SessionID().Return(domain.SessionID(77)).Once()
	source.EXPECT().Character().Return(domain.Character{
		Name:                 "Strawberry Cookie",
		WorldName:            "Gilgamesh",
		ClassJobAbbreviation: "WHM",
		Level:                100,
	}, true).Once()
	store.EXPECT().Save(mockAnyContext(), domain.SessionRecord{
		Pid:                  4242,
		ContentId:            77,
		CharacterName:        strPtr("Strawberry Cookie"),
		WorldName:            strPtr("Gilgamesh"),
		ClassJobAbbreviation: strPtr("WHM"),
		Level:                100,
	}).Return(nil).Once()

	writer.OnLogin(context.Background())
	assert.Equal(t, domain.SessionID(77), writer.Current())
}

func TestSessionStateWriterLoginWithoutCharacter(t *testing.T) {
	store := mocks.NewMockSessionStore(t)
	source := mocks.NewMockSessionSource(t)
	writer := NewSessionStateWriter(store, source, fixedPID, discardLogger())

	source.EXPECT().SessionID().Return(domain.SessionID(5)).Once()
	source.EXPECT().Character().Return(domain.Character{}, false).Once()
	store.EXPECT().Save(mockAnyContext(), domain.SessionRecord{Pid: 4242, ContentId: 5}).Return(nil).Once()

	writer.OnLogin(context.Background())
}

func TestSessionStateWriterSwallowsSaveError(t *testing.T) {
	store := mocks.NewMockSessionStore(t)
	source := mocks.NewMockSessionSource(t)
	writer := NewSessionStateWriter(store, source, fixedPID, discardLogger())

	source.EXPECT().SessionID().Return(domain.SessionID(5)).Once()
	source.EXPECT().Character().Return(domain.Character{}, false).Once()
	store.EXPECT().Save(mockAnyContext(), domain.SessionRecord{Pid: 4242, ContentId: 5}).Return(errors.New("disk full")).Once()

	assert.NotPanics(t, func() { writer.OnLogin(context.Background()) })
	assert.Equal(t, domain.SessionID(5), writer.Current())
}

func TestSessionStateWriterLogoutWithoutLoginIsNoop(t *testing.T) {
	store := mocks.NewMockSessionStore(t)
	source := mocks.NewMockSessionSource(t)
	writer := NewSessionStateWriter(store, source, fixedPID, discardLogger())

	writer.OnLogout(context.Background(), domain.LogoutEvent{Type: 1, Code: 0})
}

func TestSessionStateWriterLogoutClearsHeldIDOnDeleteError(t *testing.T) {
	store := mocks.NewMockSessionStore(t)
	source := mocks.NewMockSessionSource(t)
	writer := NewSessionStateWriter(store, source, fixedPID, discardLogger())

	source.EXPECT().SessionID().Return(domain.SessionID(9)).Once()
	source.EXPECT().Character().Return(domain.Character{}, false).Once()
	store.EXPECT().Save(mockAnyContext(), domain.SessionRecord{Pid: 4242, ContentId: 9}).Return(nil).Once()
	store.EXPECT().Delete(mockAnyContext(), domain.SessionID(9)).Return(errors.New("busy")).Once()

	writer.OnLogin(context.Background())
	writer.OnLogout(context.Background(), domain.LogoutEvent{})
	assert.Equal(t, domain.NoSession, writer.Current())

	writer.OnLogout(context.Background(), domain.LogoutEvent{})
}

type staticSource struct {
	id        domain.SessionID
	character *domain.Character
}

func (s *staticSource) SessionID() domain.SessionID { return s.id }

func (s *staticSource) Character() (domain.Character, bool) {
	if s.character == nil {
		return domain.Character{}, false
	}
	return *s.character, true
}

func TestSessionStateWriterFileLifecycle(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := sessionfile.NewStore(fs, sessionRoot)
	source := &staticSource{id: 1001, character: &domain.Character{Name: "Strawberry Cookie", Level: 90}}
	writer := NewSessionStateWriter(store, source, fixedPID, discardLogger())

	writer.OnLogin(context.Background())

	record, err := store.Get(context.Background(), 1001)
	require.NoError(t, err)
	assert.Equal(t, domain.SessionID(1001), record.ContentId)
	assert.Equal(t, 4242, record.Pid)

	// Re-login without logout moves the held id to the new session.
	source.id = 1002
	writer.OnLogin(context.Background())
	assert.Equal(t, domain.SessionID(1002), writer.Current())

	writer.OnLogout(context.Background(), domain.LogoutEvent{})

	exists, err := afero.Exists(fs, filepath.Join(sessionRoot, "1002.json"))
	require.NoError(t, err)
	assert.False(t, exists)

	records, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, domain.SessionID(1001), records[0].ContentId)
}

func TestSessionStateWriterZeroIDWritesNothing(t *testing.T) {
	fs := afero.NewMemMapFs()
	writer := NewSessionStateWriter(sessionfile.NewStore(fs, sessionRoot), &staticSource{}, fixedPID, discardLogger())

	writer.OnLogin(context.Background())

	exists, err := afero.DirExists(fs, sessionRoot)
	require.NoError(t, err)
	assert.False(t, exists)
}
