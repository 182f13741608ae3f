package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNotificationVisibleTo(t *testing.T) {
	broadcast := Notification{Broadcast: true}
	require.True(t, broadcast.VisibleTo("anyone@univ.edu"))

	direct := Notification{Recipient: "Jane@univ.edu"}
	require.True(t, direct.VisibleTo("jane@univ.edu"))
	require.False(t, direct.VisibleTo("other@univ.edu"))

	unaddressed := Notification{}
	require.False(t, unaddressed.VisibleTo("jane@univ.edu"))
}

func TestAnnouncementVisibleTo(t *testing.T) {
	students := Announcement{Audience: AudienceStudents}
	require.True(t, students.VisibleTo(RoleResearcher))
	require.False(t, students.VisibleTo(RoleStaff))

	committee := Announcement{Audience: AudienceCommittee}
	require.True(t, committee.VisibleTo(RoleReviewer))
	require.True(t, committee.VisibleTo(RoleStaff))
	require.False(t, committee.VisibleTo(RoleResearcher))

	everyone := Announcement{Audience: AudienceAll}
	require.True(t, everyone.VisibleTo(RoleResearcher))
	require.True(t, everyone.VisibleTo("unknown"))
}
