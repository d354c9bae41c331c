package tools

// ToolName is the canonical name of a tool.
type ToolName string

const (
	ToolGetItem           ToolName = "get-item-mapi"
	ToolGetDeliveryItem   ToolName = "get-item-dapi"
	ToolAddContentItem    ToolName = "add-content-item-mapi"
	ToolUpdateContentItem ToolName = "update-content-item-mapi"
	ToolDeleteContentItem ToolName = "delete-content-item-mapi"

	ToolGetVariant                ToolName = "get-variant-mapi"
	ToolGetLatestVariant          ToolName = "get-latest-variant-mapi"
	ToolGetPublishedVariant       ToolName = "get-published-variant-mapi"
	ToolUpsertLanguageVariant     ToolName = "upsert-language-variant-mapi"
	ToolDeleteLanguageVariant     ToolName = "delete-language-variant-mapi"
	ToolListVariantsItem          ToolName = "list-variants-item-mapi"
	ToolListVariantsType          ToolName = "list-variants-type-mapi"
	ToolListVariantsComponents    ToolName = "list-variants-components-type-mapi"
	ToolListVariantsCollection    ToolName = "list-variants-collection-mapi"
	ToolListVariantsSpace         ToolName = "list-variants-space-mapi"
	ToolBulkGetItemsVariants      ToolName = "bulk-get-items-variants-mapi"
	ToolCreateVariantVersion      ToolName = "create-variant-version-mapi"
	ToolPublishVariant            ToolName = "publish-variant-mapi"
	ToolUnpublishVariant          ToolName = "unpublish-variant-mapi"
	ToolChangeVariantWorkflowStep ToolName = "change-variant-workflow-step-mapi"

	ToolFilterVariants ToolName = "filter-variants-mapi"
	ToolSearchVariants ToolName = "search-variants-mapi"

	ToolListContentTypes  ToolName = "list-content-types-mapi"
	ToolGetType           ToolName = "get-type-mapi"
	ToolAddContentType    ToolName = "add-content-type-mapi"
	ToolPatchContentType  ToolName = "patch-content-type-mapi"
	ToolDeleteContentType ToolName = "delete-content-type-mapi"

	ToolListSnippets  ToolName = "list-content-type-snippets-mapi"
	ToolGetSnippet    ToolName = "get-type-snippet-mapi"
	ToolAddSnippet    ToolName = "add-content-type-snippet-mapi"
	ToolPatchSnippet  ToolName = "patch-type-snippet-mapi"
	ToolDeleteSnippet ToolName = "delete-type-snippet-mapi"

	ToolListTaxonomyGroups  ToolName = "list-taxonomy-groups-mapi"
	ToolGetTaxonomyGroup    ToolName = "get-taxonomy-group-mapi"
	ToolAddTaxonomyGroup    ToolName = "add-taxonomy-group-mapi"
	ToolPatchTaxonomyGroup  ToolName = "patch-taxonomy-group-mapi"
	ToolDeleteTaxonomyGroup ToolName = "delete-taxonomy-group-mapi"

	ToolListLanguages ToolName = "list-languages-mapi"
	ToolAddLanguage   ToolName = "add-language-mapi"
	ToolPatchLanguage ToolName = "patch-language-mapi"

	ToolListAssets        ToolName = "list-assets-mapi"
	ToolGetAsset          ToolName = "get-asset-mapi"
	ToolUpsertAsset       ToolName = "upsert-asset-mapi"
	ToolListAssetFolders  ToolName = "list-asset-folders-mapi"
	ToolPatchAssetFolders ToolName = "patch-asset-folders-mapi"

	ToolListCollections  ToolName = "list-collections-mapi"
	ToolPatchCollections ToolName = "patch-collections-mapi"

	ToolListSpaces  ToolName = "list-spaces-mapi"
	ToolAddSpace    ToolName = "add-space-mapi"
	ToolPatchSpace  ToolName = "patch-space-mapi"
	ToolModifySpace ToolName = "modify-space-mapi"
	ToolDeleteSpace ToolName = "delete-space-mapi"

	ToolListWorkflows  ToolName = "list-workflows-mapi"
	ToolAddWorkflow    ToolName = "add-workflow-mapi"
	ToolUpdateWorkflow ToolName = "update-workflow-mapi"
	ToolDeleteWorkflow ToolName = "delete-workflow-mapi"

	ToolListRoles ToolName = "list-roles-mapi"
	ToolGetRole   ToolName = "get-role-mapi"

	ToolListWebhooks ToolName = "list-webhooks-mapi"
	ToolGetWebhook   ToolName = "get-webhook-mapi"
	ToolAddWebhook   ToolName = "add-webhook-mapi"

	ToolGetPatchGuide     ToolName = "get-patch-guide"
	ToolGetInitialContext ToolName = "get-initial-context"
)
