package http

var RegisterStatic = registerStatic
var BearerToken = bearerToken
