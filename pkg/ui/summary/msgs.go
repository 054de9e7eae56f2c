package summary

// Completion banner text and the dry-run notice
const (
	RepoLink         = "https://github.com"
	StarLine         = "⋆⋅☆⋅⋆⋆⋅☆⋅⋆⋆⋅☆⋅⋆⋆⋅☆⋅⋆⋆⋅☆⋅⋆⋆⋅☆⋅⋆⋆⋅☆⋅⋆⋆⋅☆⋅⋆⋆⋅☆⋅⋆⋆⋅☆⋅⋆⋆⋅☆⋅⋆⋆⋅☆⋅⋆⋆⋅☆⋅⋆⋆⋅☆⋅⋆⋆⋅☆⋅⋆⋆⋅☆⋅⋆⋆⋅☆⋅⋆⋆⋅☆⋅⋆"
	MsgSuccess       = "Community health files setup has been done successfully! ✅"
	MsgSupportPrefix = "If you appreciate my efforts, please consider supporting me by ⭐ my repository on GitHub: "
	MsgSupport       = MsgSupportPrefix + RepoLink
	MsgDryRun        = "Dry run: nothing was written."
)
