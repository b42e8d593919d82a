package template

var modernTemplate = Definition{
	ID:          "modern",
	Name:        "Modern",
	Description: "Gradient header, pill-shaped channels, vector icons.",
	Variant: Variant{
		ClassPrefix: "fcwm",
		IconSet:     "svg",
	},
	HTML: `<div class="fcwm-root fcwm-pos-{{POSITION}}" id="{{CONTAINER_ID}}" data-widget-id="{{WIDGET_ID}}">
  <div class="fcwm-modal" style="{{MODAL_ALIGNMENT_STYLE}}">
    <div class="fcwm-modal-content" style="{{MODAL_CONTENT_POSITION_STYLE}}">
      <div class="fcwm-modal-header">
        <span class="fcwm-greeting">{{GREETING_MESSAGE}}</span>
        <button class="fcwm-close" type="button" aria-label="Close">&times;</button>
      </div>
      {{VIDEO_MARKUP}}
      <div class="fcwm-channels" data-count="{{CHANNEL_COUNT}}">{{CHANNELS_MARKUP}}</div>
      <div class="fcwm-empty" style="display: {{EMPTY_STATE_DISPLAY}};">No contact channels configured yet.</div>
    </div>
  </div>
  <div class="fcwm-tooltip fcwm-tooltip-{{TOOLTIP_POSITION}}" style="{{TOOLTIP_POSITION_STYLE}}">{{TOOLTIP_TEXT}}</div>
  <button class="fcwm-button" type="button" aria-label="{{TOOLTIP_TEXT}}">{{BUTTON_CONTENT}}</button>
</div>`,
	CSS: `.fcwm-root {
  position: fixed;
  bottom: 20px;
  {{POSITION_STYLE}}
  z-index: 999999;
  font-family: "Inter", -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif;
}
.fcwm-button {
  width: {{BUTTON_SIZE}}px;
  height: {{BUTTON_SIZE}}px;
  border-radius: 18px;
  border: none;
  cursor: pointer;
  background: {{BUTTON_COLOR}};
  color: #fff;
  display: flex;
  align-items: center;
  justify-content: center;
  box-shadow: 0 8px 24px rgba(0, 0, 0, 0.22);
  transition: border-radius 0.2s ease, transform 0.2s ease;
  overflow: hidden;
  padding: 0;
}
.fcwm-button:hover { border-radius: 50%; transform: scale(1.04); }
.fcwm-glyph { font-size: {{ICON_SIZE}}px; line-height: 1; }
.fcwm-svg { width: {{ICON_SIZE}}px; height: {{ICON_SIZE}}px; fill: currentColor; }
.fcwm-button-icon-img { width: {{ICON_SIZE}}px; height: {{ICON_SIZE}}px; object-fit: contain; }
.fcwm-button-video { width: 100%; height: 100%; object-fit: cover; }
.fcwm-tooltip {
  position: absolute;
  {{TOOLTIP_DEFAULT_VISIBILITY}}
  background: rgba(17, 24, 39, 0.92);
  color: #fff;
  padding: 7px 12px;
  border-radius: 8px;
  font-size: 13px;
  white-space: nowrap;
  pointer-events: none;
  transition: opacity 0.2s ease;
}
.fcwm-root:hover .fcwm-tooltip { {{TOOLTIP_HOVER_VISIBILITY}} }
.fcwm-modal {
  position: fixed;
  inset: 0;
  display: none;
  align-items: flex-end;
  background: rgba(15, 23, 42, 0.35);
  backdrop-filter: blur(2px);
  z-index: 999998;
}
.fcwm-modal.fcwm-open { display: flex; }
.fcwm-modal-content {
  background: #ffffff;
  border-radius: 18px;
  width: 340px;
  max-width: calc(100vw - 32px);
  max-height: 72vh;
  overflow-y: auto;
  box-shadow: 0 20px 60px rgba(15, 23, 42, 0.3);
}
.fcwm-modal-header {
  display: flex;
  align-items: center;
  justify-content: space-between;
  padding: 16px 18px;
  background: linear-gradient(135deg, {{BUTTON_COLOR}}, #1e293b);
  color: #fff;
  border-radius: 18px 18px 0 0;
}
.fcwm-greeting { font-size: 15px; font-weight: 600; }
.fcwm-close {
  border: none;
  background: rgba(255, 255, 255, 0.15);
  border-radius: 50%;
  width: 26px;
  height: 26px;
  font-size: 16px;
  line-height: 1;
  cursor: pointer;
  color: #fff;
}
.fcwm-close:hover { background: rgba(255, 255, 255, 0.3); }
.fcwm-channels {
  display: flex;
  flex-direction: column;
  gap: {{CHANNEL_GAP}}px;
  padding: 16px 18px;
}
.fcwm-channel {
  display: flex;
  align-items: center;
  gap: 12px;
  padding: 11px 16px;
  border-radius: 999px;
  color: #fff;
  text-decoration: none;
  cursor: pointer;
  font-size: 14px;
  font-weight: 500;
  transition: transform 0.15s ease, filter 0.15s ease;
}
.fcwm-channel:hover { transform: translateX(3px); filter: brightness(1.08); }
.fcwm-channel-icon { display: inline-flex; align-items: center; }
.fcwm-channel-icon svg { width: 18px; height: 18px; fill: currentColor; }
.fcwm-channel-icon img { width: 20px; height: 20px; object-fit: contain; }
.fcwm-channel-label { flex: 1; }
.fcwm-group { position: relative; }
.fcwm-group-trigger {
  display: flex;
  align-items: center;
  gap: 12px;
  width: 100%;
  padding: 11px 16px;
  border: none;
  border-radius: 999px;
  color: #fff;
  cursor: pointer;
  font-size: 14px;
  font-weight: 500;
  text-align: left;
}
.fcwm-caret { margin-left: auto; transition: transform 0.2s ease; }
.fcwm-group.fcwm-open .fcwm-caret { transform: rotate(180deg); }
.fcwm-dropdown {
  display: none;
  flex-direction: column;
  gap: 6px;
  margin-top: 8px;
  padding: 10px;
  border-radius: 14px;
  background: #f1f5f9;
}
.fcwm-group.fcwm-open .fcwm-dropdown { display: flex; }
.fcwm-dropdown-item {
  display: flex;
  align-items: center;
  gap: 10px;
  padding: 9px 12px;
  border-radius: 999px;
  color: #0f172a;
  font-size: 13px;
  cursor: pointer;
  text-decoration: none;
}
.fcwm-dropdown-item:hover { background: #e2e8f0; }
.fcwm-empty {
  padding: 20px 18px;
  text-align: center;
  color: #64748b;
  font-size: 13px;
}
.fcwm-video { padding: 14px 18px 0; }
.fcwm-video video { width: 100%; border-radius: 12px; display: block; }
.fcwm-video-top { display: flex; align-items: flex-start; }
.fcwm-video-center { display: flex; align-items: center; }
.fcwm-video-bottom { display: flex; align-items: flex-end; }
@media (max-width: 480px) {
  .fcwm-button { width: {{BUTTON_SIZE_MOBILE}}px; height: {{BUTTON_SIZE_MOBILE}}px; }
  .fcwm-svg { width: {{ICON_SIZE_MOBILE}}px; height: {{ICON_SIZE_MOBILE}}px; }
  .fcwm-button-icon-img { width: {{ICON_SIZE_MOBILE}}px; height: {{ICON_SIZE_MOBILE}}px; }
  .fcwm-channels { gap: {{CHANNEL_GAP_MOBILE}}px; }
  .fcwm-modal-content { width: calc(100vw - 24px); }
}`,
	JS: `var root = document.getElementById('{{CONTAINER_ID}}');
if (!root) { return; }
var button = root.querySelector('.fcwm-button');
var modal = root.querySelector('.fcwm-modal');
var closeButton = root.querySelector('.fcwm-close');
var tooltipText = '{{TOOLTIP_TEXT_JS}}';
var openGroup = null;

function closeGroup() {
  if (openGroup) {
    openGroup.classList.remove('fcwm-open');
    openGroup = null;
  }
}

function toggleGroup(group) {
  if (openGroup === group) {
    closeGroup();
    return;
  }
  closeGroup();
  group.classList.add('fcwm-open');
  openGroup = group;
}

button.addEventListener('click', function () {
  modal.classList.toggle('fcwm-open');
  closeGroup();
});
if (tooltipText) { button.setAttribute('title', tooltipText); }
closeButton.addEventListener('click', function () {
  modal.classList.remove('fcwm-open');
  closeGroup();
});
modal.addEventListener('click', function (ev) {
  if (ev.target === modal) {
    modal.classList.remove('fcwm-open');
    closeGroup();
  }
});
document.addEventListener('keydown', function (ev) {
  if (ev.key === 'Escape') {
    modal.classList.remove('fcwm-open');
    closeGroup();
  }
});
Array.prototype.forEach.call(root.querySelectorAll('[data-fcwm-url]'), function (el) {
  el.addEventListener('click', function (ev) {
    ev.preventDefault();
    window.{{OPENER_NAME}}(el.getAttribute('data-fcwm-url'));
  });
});
Array.prototype.forEach.call(root.querySelectorAll('[data-fcwm-dropdown]'), function (trigger) {
  trigger.addEventListener('click', function (ev) {
    ev.stopPropagation();
    toggleGroup(trigger.closest('.fcwm-group'));
  });
});
document.addEventListener('click', function (ev) {
  if (openGroup && !openGroup.contains(ev.target)) {
    closeGroup();
  }
});`,
}
