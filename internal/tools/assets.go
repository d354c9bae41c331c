package tools

import (
	"context"
	"fmt"
	"net/http"

	"github.com/kontentmcp/kontentmcp/internal/schema"
)

func assetTools() []Definition {
	return []Definition{
		{
			Name:        ToolListAssets,
			Description: "Get all Kontent.ai assets",
			Input:       schema.Empty(),
			Operation:   "Assets Listing",
			Run:         listAllTool("assets", "assets"),
		},
		{
			Name:        ToolGetAsset,
			Description: "Get Kontent.ai asset by ID",
			Input:       idInput("assetId", "Asset ID"),
			Operation:   "Asset Retrieval",
			Run:         getTool("assets/%s", "assetId"),
		},
		{
			Name:        ToolUpsertAsset,
			Description: "Create or update Kontent.ai asset by ID",
			Input: schema.Object(schema.Props{
				"assetId": schema.String().Describe("Asset ID"),
				"data":    schema.Object(schema.AssetInput()).Describe("Asset metadata to set"),
			}, "assetId", "data"),
			Operation: "Asset Upsert",
			Run: func(ctx context.Context, c Call) (any, error) {
				path, err := pathFrom(c.Args, "assets/%s", "assetId")
				if err != nil {
					return nil, err
				}
				return send(ctx, c.API, http.MethodPut, path, c.Args["data"])
			},
		},
		{
			Name:        ToolListAssetFolders,
			Description: "Get all Kontent.ai asset folders from Management API",
			Input:       schema.Empty(),
			Operation:   "Asset Folders Listing",
			Run:         getTool("folders"),
		},
		{
			Name: ToolPatchAssetFolders,
			Description: "Modify Kontent.ai asset folders using patch operations (addInto, rename, remove)." +
				patchGuideHint,
			Input: schema.Object(schema.Props{
				"operations": schema.AssetFolderPatchOperations(),
			}, "operations").Define(schema.AssetFolderDefinitions()),
			Operation: "Asset Folders Modification",
			Run: patchTool("folders", "", "folders", func(_ string, n int) string {
				return fmt.Sprintf("Asset folders modified with %s", nOps(n))
			}),
		},
	}
}
