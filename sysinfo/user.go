package sysinfo

import "context"

// CurrentUser reports the login name of the user owning this process.
func (c *Collector) CurrentUser(context.Context) (UserInfo, error) {
	name, err := c.users.Current()
	if err != nil {
		return UserInfo{}, unavailable("current user", err)
	}
	return UserInfo{Username: name}, nil
}
