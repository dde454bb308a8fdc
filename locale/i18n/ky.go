package i18n

// TODO: bổ sung bản dịch tiếng Kyrgyz; hiện tại mọi key fallback về tiếng Nga.
var ky = map[string]string{}
