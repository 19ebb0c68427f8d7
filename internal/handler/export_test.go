package handler

// Export for testing
type TranslateResponse = translateResponse
type BatchTranslateResponse = batchTranslateResponse
type ChatTurnResponse = chatTurnResponse
type ClearCacheResponse = clearCacheResponse
type LanguageResponse = languageResponse
type UpdateProfileResponse = updateProfileResponse
type UserResponse = userResponse
type AuthStatusResponse = authStatusResponse
type AuthResponseDTO = authResponse
type AISettingsResponse = aiSettingsResponse
type AITestResponse = aiTestResponse
type NetworkSettingsResponse = networkSettingsResponse
type NetworkTestResponse = networkTestResponse
type GlossaryListResponse = glossaryListResponse
type GlossaryTermResponse = glossaryTermResponse
type GlossaryConflictResponse = glossaryConflictResponse
type StandardizeResponse = standardizeResponse
type SpeechResponse = speechResponse
type QuickCommandResponse = quickCommandResponse
type SiteResponse = siteResponse
type WorkerMessageResponse = workerMessageResponse
type WorkerMessageListResponse = workerMessageListResponse
type MarkAllReadResponse = markAllReadResponse
type TBMStartResponse = tbmStartResponse
type TBMStatusResponse = tbmStatusResponse
type TBMSignatureResponse = tbmSignatureResponse
type SavedMessageResponse = savedMessageResponse
type AnnouncementResponse = announcementResponse
type LiveStatusResponse = liveStatusResponse
type BulletinResponse = bulletinResponse
type BulletinSourceResponse = bulletinSourceResponse
type RefreshStatusResponse = refreshStatusResponse

var NewAuthHandlerHelper = NewAuthHandler
var NewSettingsHandlerHelper = NewSettingsHandler

var WriteServiceError = writeServiceError
var Itoa = itoa
var FormatTimePtr = formatTimePtr
