package render

// ClientScript reads the settings element, merges neoAnimate.defaults onto
// an empty object and initialises AOS with it. When the element carries a
// data-reload URL it also applies settings pushed over that websocket.
const ClientScript = `(function () {
  "use strict";

  function readDefaults(el) {
    var options = {};
    if (!el) {
      return options;
    }
    try {
      var settings = JSON.parse(el.textContent || "{}");
      if (settings.neoAnimate && settings.neoAnimate.defaults) {
        Object.assign(options, settings.neoAnimate.defaults);
      }
    } catch (e) {
      console.error("neo-animate: invalid settings", e);
    }
    return options;
  }

  function start() {
    var el = document.getElementById("` + SettingsElementID + `");
    AOS.init(readDefaults(el));

    var url = el && el.getAttribute("data-reload");
    if (!url || typeof WebSocket === "undefined") {
      return;
    }
    var scheme = location.protocol === "https:" ? "wss://" : "ws://";
    var ws = new WebSocket(scheme + location.host + url);
    ws.onmessage = function (event) {
      var msg = JSON.parse(event.data);
      if (msg.type === "settings") {
        AOS.init(Object.assign({}, msg.defaults || {}));
        AOS.refreshHard();
      }
    };
  }

  if (document.readyState === "loading") {
    document.addEventListener("DOMContentLoaded", start);
  } else {
    start();
  }
})();
`
