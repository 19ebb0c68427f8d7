package service

// Export for testing
var MaskAPIKey = maskAPIKey
var IsMaskedKey = isMaskedKey
var ItemToBulletin = itemToBulletin
var MergeEntries = mergeEntries

const (
	KeyUserUsername      = keyUserUsername
	KeyUserNickname      = keyUserNickname
	KeyUserEmail         = keyUserEmail
	KeyUserPasswordHash  = keyUserPasswordHash
	KeyUserJWTSecret     = keyUserJWTSecret
	KeyAIProvider        = keyAIProvider
	KeyAIAPIKey          = keyAIAPIKey
	KeyAIBaseURL         = keyAIBaseURL
	KeyAIModel           = keyAIModel
	KeyAIEndpoint        = keyAIEndpoint
	KeyAIThinking        = keyAIThinking
	KeyAIReasoningEffort = keyAIReasoningEffort
	KeyAIMaxTokens       = keyAIMaxTokens
	KeyAIVerify          = keyAIVerify
	KeyAIRateLimit       = keyAIRateLimit
	KeyNetworkEnabled    = keyNetworkEnabled
	KeyNetworkType       = keyNetworkType
	KeyNetworkHost       = keyNetworkHost
	KeyNetworkPort       = keyNetworkPort
	KeyNetworkUsername   = keyNetworkUsername
	KeyNetworkPassword   = keyNetworkPassword
	KeyNetworkIPStack    = keyNetworkIPStack
	UnknownValue         = unknownValue
)

var (
	ErrUsernameRequiredHelper        = ErrUsernameRequired
	ErrInvalidUsernameHelper         = ErrInvalidUsername
	ErrEmailRequiredHelper           = ErrEmailRequired
	ErrPasswordRequiredHelper        = ErrPasswordRequired
	ErrPasswordTooShortHelper        = ErrPasswordTooShort
	ErrUserExistsHelper              = ErrUserExists
	ErrUserNotFoundHelper            = ErrUserNotFound
	ErrInvalidPasswordHelper         = ErrInvalidPassword
	ErrCurrentPasswordRequiredHelper = ErrCurrentPasswordRequired
	ErrSamePasswordHelper            = ErrSamePassword
	ErrInvalidTokenHelper            = ErrInvalidToken
)

// SetBulletinRefreshing flips the in-progress flag of a bulletin service.
func SetBulletinRefreshing(s BulletinService, v bool) {
	if bs, ok := s.(*bulletinService); ok {
		bs.mu.Lock()
		bs.isRefreshing = v
		bs.mu.Unlock()
	}
}
