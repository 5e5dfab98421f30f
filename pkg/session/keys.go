package session

// Reserved payload keys. Custom fields must not use the "_sa" prefix.
const (
	keyUserID          = "_saUserId"
	keyUserAccessToken = "_saUserAccessToken"
	keyUserSetAt       = "_saUserSetAt"
	keyUserAnon        = "_saUserAnon"
	keyHost            = "_saHost"
	keyOAuth           = "_saOauth"
	keyFlags           = "_saFlags"

	// Written by earlier releases; removed on every request.
	keyLegacySessionID = "_saDbSessionId"
	keyLegacyUser      = "_saUser"
)

// AnonIDPrefix prefixes every generated anonymous visitor id.
const AnonIDPrefix = "lo_"
