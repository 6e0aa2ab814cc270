package customtab

// Extra keys defined by the Custom Tabs protocol.
const (
	// KeySession marks a request as a Custom Tabs request. Its value is the
	// session binder, or nil when the client has no session.
	KeySession = "android.support.customtabs.extra.SESSION"

	KeyToolbarColor          = "android.support.customtabs.extra.TOOLBAR_COLOR"
	KeySecondaryToolbarColor = "android.support.customtabs.extra.SECONDARY_TOOLBAR_COLOR"
	KeyEnableURLBarHiding    = "android.support.customtabs.extra.ENABLE_URLBAR_HIDING"
	KeyCloseButtonIcon       = "android.support.customtabs.extra.CLOSE_BUTTON_ICON"
	KeyTitleVisibility       = "android.support.customtabs.extra.TITLE_VISIBILITY"
	KeyActionButtonBundle    = "android.support.customtabs.extra.ACTION_BUTTON_BUNDLE"
	KeyTintActionButton      = "android.support.customtabs.extra.TINT_ACTION_BUTTON"
	KeyToolbarItems          = "android.support.customtabs.extra.TOOLBAR_ITEMS"
	KeyMenuItems             = "android.support.customtabs.extra.MENU_ITEMS"
	KeyExitAnimationBundle   = "android.support.customtabs.extra.EXIT_ANIMATION_BUNDLE"
	KeyShareMenuItem         = "android.support.customtabs.extra.SHARE_MENU_ITEM"
	KeyRemoteViews           = "android.support.customtabs.extra.EXTRA_REMOTEVIEWS"
	KeyEnableInstantApps     = "android.support.customtabs.extra.EXTRA_ENABLE_INSTANT_APPS"
)

// Keys inside action button, toolbar item and menu item bundles.
const (
	KeyIcon          = "android.support.customtabs.customaction.ICON"
	KeyDescription   = "android.support.customtabs.customaction.DESCRIPTION"
	KeyPendingIntent = "android.support.customtabs.customaction.PENDING_INTENT"
	KeyMenuItemTitle = "android.support.customtabs.customaction.MENU_ITEM_TITLE"
)

// Keys inside the exit animation bundle.
const (
	KeyAnimPackageName = "android:activity.packageName"
	KeyAnimEnterRes    = "android:activity.animEnterRes"
	KeyAnimExitRes     = "android:activity.animExitRes"
)

// Title visibility states.
const (
	NoTitle       = 0
	ShowPageTitle = 1
)

// closeButtonMaxDP is the largest close button icon side accepted, in dp.
const closeButtonMaxDP = 24

// unsupportedFeatures lists extras that are recognised but not honoured,
// in reporting order.
var unsupportedFeatures = []struct {
	key  string
	name string
}{
	{KeySecondaryToolbarColor, "secondary toolbar color"},
	{KeyToolbarItems, "toolbar items"},
	{KeyRemoteViews, "remote views"},
	{KeyTintActionButton, "action button tint"},
	{KeyEnableInstantApps, "instant apps"},
}
