// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"strconv"
)

// Version is the launcher version compared against the remote version marker.
const Version = 20240101.0

// Root element and section names of the launcher configuration.
const (
	RootName = "Config"

	SectionMain             = "Main"
	SectionPaths            = "Paths"
	SectionMainWindow       = "MainWindow"
	SectionChangelogEditor  = "ChangelogEditor"
	SectionChangelogBrowser = "ChangelogBrowser"
	SectionFTPLoginWindow   = "FTPLoginWindow"
	SectionMessages         = "Messages"
)

const headerComment = "This is a config file for Launcher. Feel free to edit whatever you want or even translate Launcher to your native language. Pay close attention to comments and documentation."

const flagValues = "1 or 0. "

// Defaults builds the built-in configuration document. It performs no I/O
// and returns an equal document on every call.
func Defaults() *Document {
	b := NewDocumentBuilder(RootName, headerComment)

	mainDefaults(b)
	pathDefaults(b)
	mainWindowDefaults(b)
	changelogEditorDefaults(b)
	changelogBrowserDefaults(b)
	ftpLoginWindowDefaults(b)
	messageDefaults(b)

	return b.Build()
}

// FormatVersion renders a launcher version the way window titles show it.
func FormatVersion(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func mainDefaults(b *DocumentBuilder) {
	b.Section(SectionMain, "Main settings of an application.").
		Annotated("DeleteCache", "1", flagValues+"If 1, Cache folder is always deleted.").
		Annotated("KeepBackups", "1", flagValues+"If 1, .ext_ files are being kept as backups. Recommended 1.").
		Annotated("KeepBlizzlikeMPQs", "1", flagValues+"If 1, blizzlike MPQs in Data are ignored by Launcher. Otherwise they are handled in a same manner as custom one. Recommended 1.").
		Annotated("ForcedRealmlist", "1", flagValues+"If 1, realmlist.wtf will always be updated to match realmlist.wtf in FilesRootPath.").
		Annotated("FileProcessingOutputs", "1", flagValues+"If 1, messages about downloading and unziping files will be shown.")
}

func pathDefaults(b *DocumentBuilder) {
	const updates = "https://www.wild-wow.com/updates/"

	b.Section(SectionPaths, "Paths to files and folders Launcher will work with. They are commonly all !CASE SENSITIVE!").
		Annotated("FilelistPath", updates+"filelist.conf", "Path to text filelist.").
		Annotated("VersionPath", updates+"launcherversion.conf", "Path to text file which contains your Lancher's current version (version is a double value with . as separator!").
		Annotated("LauncherPath", updates+"Launcher.zip", "Path to a zip file with Launcher files - used if Launcher finds itself outdated.").
		Annotated("FilesRootPath", updates, "Path to folder with files. Paths in filelist are relative to this path.").
		Annotated("ChangelogPath", updates+"changelog.xml", "!HTTP! path to changelog XML file.").
		Annotated("ChangelogFTPPath", "ftp://ftp.example.com//www/files/", "!Full! !FTP! path to folder in which changelog is. Notice that //www/ part. You may want to use an IP instead of a domain name.").
		Annotated("Webpage", "https://www.wild-wow.com", "URL which is to be opened when user clicks on Project webpage button.").
		Annotated("Registration", "https://www.wild-wow.com", "URL which is to be opened when user clicks on Registration button.").
		Annotated("Instructions", "https://www.wild-wow.com/launchermanual/", "URL which is to be opened when user clicks on Launcher manual button.").
		Annotated("HelloImage", updates+"hello.png", "URL to image which is to be displayed in Main window (latest news image). Clicking on it opens a changelog browser.")
}

func mainWindowDefaults(b *DocumentBuilder) {
	b.Section(SectionMainWindow, "Visual settings for Main Window.").
		Annotated("WindowName", "wild-wow Launcher "+FormatVersion(Version), "Name of main window. Change this to match your project's name.").
		Add("OutputBox", "Text output:").
		Add("OptionalBox", "可选更新:").
		Add("CheckForUpdatesButton", "检查更新").
		Add("UpdateButton", "更新").
		Add("WebpageButton", "网站").
		Add("RegistrationButton", "注册").
		Add("LauncherInstructionsButton", "手册").
		Add("DeleteBackupsButton", "删除备份文件").
		Add("ChangelogEditorButton", "编辑更新日志").
		Add("ChangelogBrowserButton", "查看更新日志").
		Add("LaunchButton", "启动游戏").
		Add("ProgressText", "正在下载: ").
		Add("ProgressSeparator", " / ").
		Add("DownloadSpeedUnits", "/s, ").
		Add("remaining", "剩余").
		Add("downloaded", "已下载, ").
		Add("ToolTipTotalSize", "Total size: ").
		Add("PanelTotalSize", "Total size of outdated:").
		Add("LabelTotalSizeOpt", "Chosen optionals: ").
		Add("LabelTotalSizeNonOpt", "Non-optionals: ").
		Add("second", " s ").
		Add("minute", " m ").
		Add("hour", " h ").
		Add("Complete", "下载完成!").
		Add("Errors", "出错了!")
}

func changelogEditorDefaults(b *DocumentBuilder) {
	b.Section(SectionChangelogEditor, "Visual settings for Changelog Editor. A lot of those are used by Changelog Browser as well.").
		Add("WindowName", "Changelog Editor").
		Add("ChangelogEntries", "Changelog entries:").
		Add("DateColumn", "Date").
		Add("HeadingColumn", "Heading").
		Add("Date", "Date:").
		Annotated("DateFormat", "dd.MM.yyyy hh:mm", "Carefully with this. MM for months, mm for minutes. You can use your own format, but it must be correct. Changelog's data must also be compatible with this, if your changelog isn't empty when this is being changed!").
		Add("PictureURL", "Picture URL:").
		Add("Heading", "Heading:").
		Add("PicturePreview", "Picture preview:").
		Add("Description", "Description:").
		Add("EditEntryButton", "Edit entry").
		Add("DeleteEntryButton", "Delete entry").
		Add("CreateEntryButton", "Create entry").
		Add("SaveEntryButton", "Save entry").
		Add("TestPictureButton", "Test picture").
		Add("CancelButton", "Cancel changes").
		Add("SaveButton", "Save changelog")
}

func changelogBrowserDefaults(b *DocumentBuilder) {
	b.Section(SectionChangelogBrowser, "Visual settings for Changelog Browser.").
		Add("WindowName", "Changelog Browser").
		Add("InfoText", "Click on an entry in entries list in order to display it.").
		Add("Picture", "Picture:")
}

func ftpLoginWindowDefaults(b *DocumentBuilder) {
	b.Section(SectionFTPLoginWindow, "Visual settings for authentization dialog window for Changelog Editor.").
		Add("WindowName", "Login to FTP").
		Add("Login", "Login:").
		Add("Password", "Password:").
		Add("OKButton", "OK").
		Add("CancelButton", "Cancel")
}

// Values ending with a space are completed by the caller (file name, URL).
func messageDefaults(b *DocumentBuilder) {
	b.Section(SectionMessages, "各种可能由启动器输出的消息。").
		Annotated("HelloMessage", "欢迎来到wow wild:https://www.wild-wow.com", "请将这条信息保留在这里。如果你想添加任何内容，请添加在原始消息之后。").
		Add("XmlNotOpened", "启动器使用默认参数。如果\"更新\"按钮不可用，请尝试关闭启动器后重新打开。").
		Add("ChangelogNotOpened", "无法打开网页上的更新日志文件。").
		Add("ChangelogNotLoaded", "无法加载更新日志数据。请联系支持。").
		Add("ChangelogEmpty", "警告：更新日志为空。你当前正在创建一个新的。").
		Add("InvalidFtpPassword", "登录密码组合不正确, 或FTP路径到更新日志不正确。").
		Add("PictureNotOpened", "无法打开给定URL的图片。URL似乎无效。").
		Add("ChangelogNotUploaded", "无法上传更新日志。备份XML文件可以在启动器目录中找到。").
		Add("ChangelogUploadOK", "更新日志已成功更新。").
		Add("UnZipingFileError", "解压文件失败：").
		Add("DownloadingFrom", "正在从以下地址下载文件：").
		Add("DownloadingTo", "下载到：").
		Add("UnzipingFile", "正在解压文件：").
		Add("FileDeletingError", "文件删除失败：").
		Add("WowExeMissing", "未找到Wow.exe").
		Add("DataDirMissing", "未找到数据目录！").
		Add("BlizzlikeMpqMissing", "未能找到关键文件：").
		Add("LauncherNotInWowDir", "你的魔兽世界客户端要么已损坏，要么启动器不在魔兽世界根目录。").
		Add("FilelistOpeningFailed", "启动器无法打开网上的文件列表。检查你的网络连接，或联系支持团队。错误信息：").
		Add("FilelistReadingFailed", "网络上的文件列表无效。联系你的支持团队。").
		Add("FileOnsWebMissing", "无法找到文件的大小。文件可能在网上服务器上丢失。").
		Add("WebRealmlistMissing", "无法在网上找到realmlist.wtf文件。无法验证realmlist。").
		Add("RealmlistMissing", "本地的realmlist.wtf似乎丢失了。如果是这样,请创建一个新的。").
		Add("OptionalsPresetLoadFailed", "你没有保存可选组的选择，或者它们的列表已更改。请在点击更新按钮前注意可选文件复选框列表。").
		Add("DownloadError", "在下载以下文件时发生错误：").
		Add("FileDownloadError", "有些文件显然没有成功下载。重新运行更新检查和更新。").
		Add("HelloImageNotLoaded", "新闻图片无法加载。").
		Add("VersionNotVerified", "启动器无法验证是否为最新。如果这个问题持续存在，请通知你的支持团队。").
		Add("VersionNotVerifiedFileNotFound", "未找到VersionNotVerifiedFileNotFound。").
		Add("VersionNotVerifiedFileParseError", "VersionNotVerifiedFileParseError。").
		Add("CouldNotBeUpdated", "启动器尝试了自我更新，但没有成功。如果问题持续存在，请尝试重新运行启动器并联系你的支持团队。").
		Add("OutdatedLauncher", "网上似乎有一个新版本的启动器。启动器将尝试更新然后重启。").
		Add("LauncherUpdated", "启动器已成功更新。请再次运行启动器。").
		Add("Removing", "正在移除文件：")
}
