package alert

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"zenfocus/internal/core/focustimer"
)

var testMessage = Message{Title: "Time is up!", Body: "Nice work. Take a short break."}

type dispatcherMocks struct {
	tone        *MockTone
	notifier    *MockNotifier
	permissions *MockPermissionProvider
}

func newDispatcherMocks(t *testing.T) (*Dispatcher, dispatcherMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mocks := dispatcherMocks{
		tone:        NewMockTone(ctrl),
		notifier:    NewMockNotifier(ctrl),
		permissions: NewMockPermissionProvider(ctrl),
	}
	dispatcher := NewDispatcher(mocks.tone, mocks.notifier, mocks.permissions, testMessage)
	t.Cleanup(dispatcher.Wait)
	return dispatcher, mocks
}

func TestDispatcher_Init(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(m dispatcherMocks)
		want      Permission
	}{
		{
			name: "granted is not requested again",
			setupMock: func(m dispatcherMocks) {
				m.permissions.EXPECT().Query().Return(PermissionGranted)
			},
			want: PermissionGranted,
		},
		{
			name: "denied is never requested again",
			setupMock: func(m dispatcherMocks) {
				m.permissions.EXPECT().Query().Return(PermissionDenied)
			},
			want: PermissionDenied,
		},
		{
			name: "undetermined asks once",
			setupMock: func(m dispatcherMocks) {
				m.permissions.EXPECT().Query().Return(PermissionUndetermined)
				m.permissions.EXPECT().Request(gomock.Any()).Return(PermissionGranted, nil)
			},
			want: PermissionGranted,
		},
		{
			name: "failed request stays undetermined",
			setupMock: func(m dispatcherMocks) {
				m.permissions.EXPECT().Query().Return(PermissionUndetermined)
				m.permissions.EXPECT().Request(gomock.Any()).Return(PermissionUndetermined, errors.New("dialog closed"))
			},
			want: PermissionUndetermined,
		},
		{
			name: "answer is kept when saving it fails",
			setupMock: func(m dispatcherMocks) {
				m.permissions.EXPECT().Query().Return(PermissionUndetermined)
				m.permissions.EXPECT().Request(gomock.Any()).Return(PermissionDenied, errors.New("disk full"))
			},
			want: PermissionDenied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dispatcher, mocks := newDispatcherMocks(t)
			tt.setupMock(mocks)

			dispatcher.Init(context.Background())
			dispatcher.Init(context.Background())
			dispatcher.Wait()

			assert.Equal(t, tt.want, dispatcher.Permission())
		})
	}
}

func TestDispatcher_FireGranted(t *testing.T) {
	dispatcher, mocks := newDispatcherMocks(t)
	mocks.permissions.EXPECT().Query().Return(PermissionGranted)
	mocks.tone.EXPECT().Play().Return(nil)
	mocks.notifier.EXPECT().Notify(testMessage.Title, testMessage.Body).Return(nil)

	dispatcher.Init(context.Background())
	dispatcher.Fire(1)
	dispatcher.Wait()
}

func TestDispatcher_FireDeniedStillPlaysTone(t *testing.T) {
	dispatcher, mocks := newDispatcherMocks(t)
	mocks.permissions.EXPECT().Query().Return(PermissionDenied)
	mocks.tone.EXPECT().Play().Return(nil)

	dispatcher.Init(context.Background())
	dispatcher.Fire(1)
	dispatcher.Wait()
}

func TestDispatcher_FireOncePerCompletion(t *testing.T) {
	dispatcher, mocks := newDispatcherMocks(t)
	mocks.permissions.EXPECT().Query().Return(PermissionGranted)
	mocks.tone.EXPECT().Play().Return(nil).Times(2)
	mocks.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	dispatcher.Init(context.Background())
	dispatcher.OnFinish(focustimer.Completion{Seq: 1})
	dispatcher.OnFinish(focustimer.Completion{Seq: 1})
	dispatcher.Fire(2)
	dispatcher.Fire(1)
	dispatcher.Wait()
}

func TestDispatcher_ToneFailureDoesNotBlockNotification(t *testing.T) {
	dispatcher, mocks := newDispatcherMocks(t)
	mocks.permissions.EXPECT().Query().Return(PermissionGranted)
	mocks.tone.EXPECT().Play().Return(errors.New("audio not permitted"))
	mocks.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil)

	dispatcher.Init(context.Background())
	dispatcher.Fire(1)
	dispatcher.Wait()
}

func TestDispatcher_RecoversPanics(t *testing.T) {
	dispatcher, mocks := newDispatcherMocks(t)
	mocks.permissions.EXPECT().Query().Return(PermissionGranted)
	mocks.tone.EXPECT().Play().DoAndReturn(func() error { panic("device gone") })
	mocks.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil)

	dispatcher.Init(context.Background())
	assert.NotPanics(t, func() {
		dispatcher.Fire(1)
		dispatcher.Wait()
	})
}

func TestDispatcher_FireDoesNotBlock(t *testing.T) {
	dispatcher, mocks := newDispatcherMocks(t)
	release := make(chan struct{})
	mocks.tone.EXPECT().Play().DoAndReturn(func() error {
		<-release
		return nil
	})

	start := time.Now()
	dispatcher.Fire(1)
	assert.Less(t, time.Since(start), time.Second)
	close(release)
	dispatcher.Wait()
}

func TestDispatcher_SettingsApplyToLaterFires(t *testing.T) {
	dispatcher, mocks := newDispatcherMocks(t)
	mocks.permissions.EXPECT().Query().Return(PermissionGranted)
	mocks.notifier.EXPECT().Notify("Break", "Stretch").Return(nil)

	dispatcher.Init(context.Background())
	dispatcher.SetToneEnabled(false)
	dispatcher.SetMessage(Message{Title: "Break", Body: "Stretch"})
	dispatcher.Fire(1)
	dispatcher.Wait()
}

func TestDispatcher_NilCollaborators(t *testing.T) {
	dispatcher := NewDispatcher(nil, nil, nil, testMessage)
	dispatcher.Init(context.Background())

	assert.NotPanics(t, func() {
		dispatcher.Fire(1)
		dispatcher.Wait()
	})
	assert.Equal(t, PermissionUndetermined, dispatcher.Permission())
}

func TestStaticPermission(t *testing.T) {
	provider := StaticPermission(PermissionGranted)
	assert.Equal(t, PermissionGranted, provider.Query())
	answer, err := provider.Request(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, PermissionGranted, answer)
}

func TestParsePermission(t *testing.T) {
	assert.Equal(t, PermissionGranted, ParsePermission("granted"))
	assert.Equal(t, PermissionDenied, ParsePermission("denied"))
	assert.Equal(t, PermissionUndetermined, ParsePermission(""))
	assert.Equal(t, PermissionUndetermined, ParsePermission("default"))
}
