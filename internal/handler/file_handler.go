package handler

import (
	"context"
	"net/http"
	"time"

	"ysocial/internal/app/storage"
	"ysocial/internal/pkg/auth/jwt"
	"ysocial/internal/pkg/errs"
	"ysocial/internal/pkg/logx"
	"ysocial/internal/pkg/req"
	"ysocial/internal/pkg/resp"
)

// staleAvatarDeleteTimeout bounds the background removal of a replaced avatar.
const staleAvatarDeleteTimeout = 10 * time.Second

// PresignAvatarInput defines the JSON input structure for an avatar upload URL.
type PresignAvatarInput struct {
	FileName string `json:"fileName" validate:"required"`
	MimeType string `json:"mimeType" validate:"required"`
	FileSize int64  `json:"fileSize"`
}

// HandlePresignAvatarURL signs an upload URL for a new avatar of the signed-in
// user. The account is not touched until the upload is confirmed.
func HandlePresignAvatarURL(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := jwt.GetPayloadFromContext(r)
		if identity == nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnauthorized))
			return
		}
		userID, _ := identity.Subject()

		if deps.StorageService == nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrStorageUnavailable))
			return
		}

		var input PresignAvatarInput
		if customErr := req.BindJSON(w, r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}
		if customErr := req.Validate(&input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}
		if customErr := storage.ValidateAvatar(input.FileName, input.MimeType, input.FileSize); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		avatarKey := storage.AvatarKey(userID, input.FileName)

		url, err := deps.StorageService.PresignUpload(
			r.Context(),
			avatarKey,
			input.MimeType,
			input.FileSize,
			storage.PresignedURLDuration,
		)
		if err != nil {
			resp.RespondError(w, r, err)
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"uploadUrl": url,
			"avatarKey": avatarKey,
		})
	}
}

// ConfirmAvatarInput names an uploaded avatar object.
type ConfirmAvatarInput struct {
	AvatarKey string `json:"avatarKey" validate:"required"`
}

// HandleConfirmAvatar makes an uploaded object the user's avatar once the
// bucket confirms it exists, then removes the replaced object.
func HandleConfirmAvatar(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := jwt.GetPayloadFromContext(r)
		if identity == nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnauthorized))
			return
		}
		userID, _ := identity.Subject()

		if deps.StorageService == nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrStorageUnavailable))
			return
		}

		var input ConfirmAvatarInput
		if customErr := req.BindJSON(w, r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}
		if customErr := req.Validate(&input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}
		if !storage.OwnsAvatarKey(userID, input.AvatarKey) {
			resp.RespondError(w, r, req.InvalidFields(req.FieldError{Field: "avatarKey", Rule: "owner"}))
			return
		}

		uploaded, err := deps.StorageService.Exists(r.Context(), input.AvatarKey)
		if err != nil {
			resp.RespondError(w, r, err)
			return
		}
		if !uploaded {
			resp.RespondError(w, r, req.InvalidFields(req.FieldError{Field: "avatarKey", Rule: "uploaded"}))
			return
		}

		previous, err := deps.Users.SetAvatarKey(r.Context(), userID, input.AvatarKey)
		if err != nil {
			resp.RespondError(w, r, err)
			return
		}

		if previous != "" && previous != input.AvatarKey {
			go func(key string) {
				ctx, cancel := context.WithTimeout(context.Background(), staleAvatarDeleteTimeout)
				defer cancel()
				if err := deps.StorageService.Delete(ctx, key); err != nil {
					logx.Warn("avatar: failed to delete replaced object", "key", key, "error", err)
				}
			}(previous)
		}

		resp.Respond(w, r, http.StatusOK, "Avatar updated", map[string]any{
			"avatarKey": input.AvatarKey,
		})
	}
}
