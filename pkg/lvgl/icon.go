package lvgl

// Icon is a FontAwesome symbol encoded as UTF-8. The built-in Montserrat
// fonts carry these glyphs, so an Icon can be used both as label text and
// as an image source.
type Icon string

const (
	IconDummy        Icon = "\xEF\xA3\xBF"
	IconBullet       Icon = "\xE2\x80\xA2"
	IconAudio        Icon = "\xEF\x80\x81"
	IconVideo        Icon = "\xEF\x80\x88"
	IconList         Icon = "\xEF\x80\x8B"
	IconOK           Icon = "\xEF\x80\x8C"
	IconClose        Icon = "\xEF\x80\x8D"
	IconPower        Icon = "\xEF\x80\x91"
	IconSettings     Icon = "\xEF\x80\x93"
	IconHome         Icon = "\xEF\x80\x95"
	IconDownload     Icon = "\xEF\x80\x99"
	IconDrive        Icon = "\xEF\x80\x9C"
	IconRefresh      Icon = "\xEF\x80\xA1"
	IconMute         Icon = "\xEF\x80\xA6"
	IconVolumeMid    Icon = "\xEF\x80\xA7"
	IconVolumeMax    Icon = "\xEF\x80\xA8"
	IconImage        Icon = "\xEF\x80\xBE"
	IconTint         Icon = "\xEF\x81\x83"
	IconPrev         Icon = "\xEF\x81\x88"
	IconPlay         Icon = "\xEF\x81\x8B"
	IconPause        Icon = "\xEF\x81\x8C"
	IconStop         Icon = "\xEF\x81\x8D"
	IconNext         Icon = "\xEF\x81\x91"
	IconEject        Icon = "\xEF\x81\x92"
	IconLeft         Icon = "\xEF\x81\x93"
	IconRight        Icon = "\xEF\x81\x94"
	IconPlus         Icon = "\xEF\x81\xA7"
	IconMinus        Icon = "\xEF\x81\xA8"
	IconEyeOpen      Icon = "\xEF\x81\xAE"
	IconEyeClose     Icon = "\xEF\x81\xB0"
	IconWarning      Icon = "\xEF\x81\xB1"
	IconShuffle      Icon = "\xEF\x81\xB4"
	IconUp           Icon = "\xEF\x81\xB7"
	IconDown         Icon = "\xEF\x81\xB8"
	IconLoop         Icon = "\xEF\x81\xB9"
	IconDirectory    Icon = "\xEF\x81\xBB"
	IconUpload       Icon = "\xEF\x82\x93"
	IconCall         Icon = "\xEF\x82\x95"
	IconCut          Icon = "\xEF\x83\x84"
	IconCopy         Icon = "\xEF\x83\x85"
	IconSave         Icon = "\xEF\x83\x87"
	IconBars         Icon = "\xEF\x83\x89"
	IconEnvelope     Icon = "\xEF\x83\xA0"
	IconCharge       Icon = "\xEF\x83\xA7"
	IconPaste        Icon = "\xEF\x83\xAA"
	IconBell         Icon = "\xEF\x83\xB3"
	IconKeyboard     Icon = "\xEF\x84\x9C"
	IconGPS          Icon = "\xEF\x84\xA4"
	IconFile         Icon = "\xEF\x85\x9B"
	IconWifi         Icon = "\xEF\x87\xAB"
	IconBatteryFull  Icon = "\xEF\x89\x80"
	IconBattery3     Icon = "\xEF\x89\x81"
	IconBattery2     Icon = "\xEF\x89\x82"
	IconBattery1     Icon = "\xEF\x89\x83"
	IconBatteryEmpty Icon = "\xEF\x89\x84"
	IconUSB          Icon = "\xEF\x8A\x87"
	IconBluetooth    Icon = "\xEF\x8A\x93"
	IconTrash        Icon = "\xEF\x8B\xAD"
	IconEdit         Icon = "\xEF\x8C\x84"
	IconBackspace    Icon = "\xEF\x95\x9A"
	IconSDCard       Icon = "\xEF\x9F\x82"
	IconNewLine      Icon = "\xEF\xA2\xA2"
)

var iconNames = map[Icon]string{
	IconDummy:        "dummy",
	IconBullet:       "bullet",
	IconAudio:        "audio",
	IconVideo:        "video",
	IconList:         "list",
	IconOK:           "ok",
	IconClose:        "close",
	IconPower:        "power",
	IconSettings:     "settings",
	IconHome:         "home",
	IconDownload:     "download",
	IconDrive:        "drive",
	IconRefresh:      "refresh",
	IconMute:         "mute",
	IconVolumeMid:    "volume_mid",
	IconVolumeMax:    "volume_max",
	IconImage:        "image",
	IconTint:         "tint",
	IconPrev:         "prev",
	IconPlay:         "play",
	IconPause:        "pause",
	IconStop:         "stop",
	IconNext:         "next",
	IconEject:        "eject",
	IconLeft:         "left",
	IconRight:        "right",
	IconPlus:         "plus",
	IconMinus:        "minus",
	IconEyeOpen:      "eye_open",
	IconEyeClose:     "eye_close",
	IconWarning:      "warning",
	IconShuffle:      "shuffle",
	IconUp:           "up",
	IconDown:         "down",
	IconLoop:         "loop",
	IconDirectory:    "directory",
	IconUpload:       "upload",
	IconCall:         "call",
	IconCut:          "cut",
	IconCopy:         "copy",
	IconSave:         "save",
	IconBars:         "bars",
	IconEnvelope:     "envelope",
	IconCharge:       "charge",
	IconPaste:        "paste",
	IconBell:         "bell",
	IconKeyboard:     "keyboard",
	IconGPS:          "gps",
	IconFile:         "file",
	IconWifi:         "wifi",
	IconBatteryFull:  "battery_full",
	IconBattery3:     "battery_3",
	IconBattery2:     "battery_2",
	IconBattery1:     "battery_1",
	IconBatteryEmpty: "battery_empty",
	IconUSB:          "usb",
	IconBluetooth:    "bluetooth",
	IconTrash:        "trash",
	IconEdit:         "edit",
	IconBackspace:    "backspace",
	IconSDCard:       "sd_card",
	IconNewLine:      "new_line",
}

// Name returns the lower-case symbol name, or "" for a string that is not
// one of the built-in symbols.
func (i Icon) Name() string { return iconNames[i] }

// IconByName returns the symbol registered under name.
func IconByName(name string) (Icon, bool) {
	for icon, n := range iconNames {
		if n == name {
			return icon, true
		}
	}
	return "", false
}

// src is the image source handed to the native library.
func (i Icon) src() string { return string(i) }
