package alert

import "context"

// StaticPermission is a PermissionProvider with a fixed answer.
type StaticPermission Permission

func (permission StaticPermission) Query() Permission {
	return Permission(permission)
}

func (permission StaticPermission) Request(context.Context) (Permission, error) {
	return Permission(permission), nil
}
