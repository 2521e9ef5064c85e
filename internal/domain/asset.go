package domain

import "time"

// AssetStatus is the availability of an uploaded asset
type AssetStatus string

const (
	AssetStatusEnabled  AssetStatus = "enabled"
	AssetStatusDisabled AssetStatus = "disabled"
)

// Asset is an uploaded file within a space
type Asset struct {
	AssetID          string      `json:"assetId" bson:"assetId"`
	SpaceID          string      `json:"spaceId" bson:"spaceId"`
	AssetFolderID    string      `json:"assetFolderId,omitempty" bson:"assetFolderId,omitempty"`
	Name             string      `json:"name" bson:"name"`
	Type             string      `json:"type" bson:"type"`
	Status           AssetStatus `json:"status" bson:"status"`
	Size             int64       `json:"size" bson:"size"`
	StoragePath      string      `json:"-" bson:"storagePath"`
	ModifiedDate     time.Time   `json:"modifiedDate" bson:"modifiedDate"`
	ModifiedUserID   string      `json:"modifiedUserId" bson:"modifiedUserId"`
	ModifiedUserName string      `json:"modifiedUserName" bson:"modifiedUserName"`
}

// AssetItem is an asset with its folder name resolved for listing
type AssetItem struct {
	Asset
	FolderName string `json:"folderName,omitempty"`
}

// AssetFolder groups assets within a space
type AssetFolder struct {
	AssetFolderID string    `json:"assetFolderId" bson:"assetFolderId"`
	SpaceID       string    `json:"spaceId" bson:"spaceId"`
	Name          string    `json:"name" bson:"name"`
	CreatedDate   time.Time `json:"createdDate" bson:"createdDate"`
}

// AssetFolderCreate represents asset folder creation data
type AssetFolderCreate struct {
	Name string `json:"name" validate:"required,max=255"`
}
